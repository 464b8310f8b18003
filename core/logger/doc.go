// Package logger provides slog setup with console and file sinks, plus
// attribute helpers for consistent structured logging.
//
// # Setup
//
// Setup builds a *slog.Logger that fans every record out to a console
// handler and one or two file handlers, each with its own level:
//
//	log, err := logger.Setup(logger.Config{
//		Dir:          "logs",
//		File:         "app.log",      // info and above
//		DebugFile:    "debug.log",    // everything
//		ConsoleLevel: slog.LevelWarn, // console stays quiet
//	})
//	if err != nil {
//		panic(err)
//	}
//	slog.SetDefault(log)
//
// The log directory is created when missing. File sinks truncate on setup,
// so each run starts with fresh logs.
//
// # Attribute Helpers
//
// The helpers return a zero slog.Attr for nil or empty input, so call sites
// never need nil checks:
//
//	log.Info("state changed",
//		logger.StateName("ip"),
//		logger.SubscriberID(sub.ID()),
//		logger.Error(err), // no-op attr when err is nil
//	)
package logger
