package randomdata

var firstNames = []string{
	"Alice", "Amelia", "Arthur", "Bella", "Benjamin", "Carlos", "Charlotte",
	"Daniel", "Diana", "Elena", "Emil", "Fiona", "Frederik", "Grace",
	"Hannah", "Henry", "Ida", "Jakob", "Johanna", "Jonas", "Karla", "Leon",
	"Lina", "Lucas", "Marie", "Mats", "Mia", "Noah", "Nora", "Oliver",
	"Paula", "Philipp", "Rosa", "Samuel", "Sofia", "Theo", "Valentina",
	"Victor", "Wilma", "Yusuf",
}

var lastNames = []string{
	"Albrecht", "Bauer", "Becker", "Braun", "Fischer", "García",
	"Hoffmann", "Jensen", "Keller", "Klein", "Koch", "König", "Krause",
	"Lang", "Lehmann", "Martin", "Meyer", "Müller", "Neumann", "Peters",
	"Richter", "Rossi", "Schmidt", "Schneider", "Schulz", "Schwarz",
	"Silva", "Vogel", "Wagner", "Weber", "Winkler", "Wolf", "Zimmermann",
}

var facts = []string{
	"Some cats are allergic to humans",
	"Competitive art was an olympic discipline",
	"A chef's hat has exactly 100 folds",
	"Oranges are not naturally occurring fruits",
	"High heels were originally worn by men",
	"Queen Elizabeth II was a trained mechanic",
	"2014 saw the first Tinder match in the Antarctic",
	"Hot water freezes faster than cold water",
	"Dolphins have names for each other",
	"Otters hold hands while sleeping",
	"The national animal of Scotland is the unicorn",
	"Bees sometimes sting other bees",
	"Koalas have fingerprints",
	"The author of Dracula was never in Transylvania",
	"Humans sneeze faster than cheetahs run",
	"The patent for fire hydrants was lost in a fire",
	"Cows kill more people than sharks",
	"Sharks have been around longer than trees",
	"The Twitter bird's name is Larry",
	"When hippos are angry, their sweat turns red",
	"A flock of crows is called a murder",
	"If you lift a kangaroo's tail, it cannot hop",
	"Catfish are the only animals with an uneven number of whiskers",
	"The Eiffel Tower has 1665 steps",
}
