// Package spinner shows a terminal progress indicator while a long-running
// task executes.
//
// The zero-setup path is Wrap, which animates for the duration of a
// function call:
//
//	err := spinner.Wrap("migrating", func() error {
//	    return migrate(ctx)
//	})
//
// For manual control create a Spinner and pair Start with Stop:
//
//	s := spinner.New(spinner.WithMessage("loading"))
//	s.Start()
//	defer s.Stop()
//
// The animation is suppressed when the CI environment variable is set to
// "true", so wrapped tasks stay silent in pipelines.
package spinner
