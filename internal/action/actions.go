// Package action provides the text action vocabulary: canonical action names,
// their aliases and the keystroke each one sends to the game.
package action

// Categories for organizing actions.
const (
	CategoryMovement = "movement"
	CategoryCommand  = "command"
	CategoryText     = "text"
	CategoryWizard   = "wizard"
	CategorySystem   = "system"
)

// Action is one text action an agent may issue.
type Action struct {
	// Name is the canonical action name.
	Name string
	// Aliases are alternate texts accepted for this action.
	Aliases []string
	// Notation is the keystroke in key notation: "k", "^x" (control), "M-a" (meta).
	Notation string
	// Category groups the action.
	Category string
}

// Key returns the byte the action sends to the game.
func (a Action) Key() (byte, error) {
	return ParseNotation(a.Notation)
}

// BuiltinActions returns the full action vocabulary.
func BuiltinActions() []Action {
	return []Action{
		{Name: "help", Notation: "?", Category: CategorySystem},
		{Name: "previous message", Notation: "^p", Category: CategorySystem},

		{Name: "north", Notation: "k", Category: CategoryMovement},
		{Name: "east", Notation: "l", Category: CategoryMovement},
		{Name: "south", Notation: "j", Category: CategoryMovement},
		{Name: "west", Notation: "h", Category: CategoryMovement},
		{Name: "northeast", Notation: "u", Category: CategoryMovement},
		{Name: "southeast", Notation: "n", Category: CategoryMovement},
		{Name: "southwest", Notation: "b", Category: CategoryMovement},
		{Name: "northwest", Notation: "y", Category: CategoryMovement},
		{Name: "far north", Notation: "K", Category: CategoryMovement},
		{Name: "far east", Notation: "L", Category: CategoryMovement},
		{Name: "far south", Notation: "J", Category: CategoryMovement},
		{Name: "far west", Notation: "H", Category: CategoryMovement},
		{Name: "far northeast", Notation: "U", Category: CategoryMovement},
		{Name: "far southeast", Notation: "N", Category: CategoryMovement},
		{Name: "far southwest", Notation: "B", Category: CategoryMovement},
		{Name: "far northwest", Notation: "Y", Category: CategoryMovement},
		{Name: "up", Notation: "<", Category: CategoryMovement},
		{Name: "down", Notation: ">", Category: CategoryMovement},
		{Name: "wait", Notation: ".", Category: CategoryMovement},

		{Name: "more", Aliases: []string{`\r`}, Notation: "\r", Category: CategorySystem},

		{Name: "extcmd", Notation: "#", Category: CategoryCommand},
		{Name: "extlist", Notation: "M-?", Category: CategoryCommand},
		{Name: "adjust", Notation: "M-a", Category: CategoryCommand},
		{Name: "annotate", Notation: "M-A", Category: CategoryCommand},
		{Name: "apply", Notation: "a", Category: CategoryCommand},
		{Name: "attributes", Notation: "^x", Category: CategoryCommand},
		{Name: "autopickup", Notation: "@", Category: CategoryCommand},
		{Name: "call", Notation: "C", Category: CategoryCommand},
		{Name: "cast", Notation: "Z", Category: CategoryCommand},
		{Name: "chat", Notation: "M-c", Category: CategoryCommand},
		{Name: "close", Notation: "c", Category: CategoryCommand},
		{Name: "conduct", Notation: "M-C", Category: CategoryCommand},
		{Name: "dip", Notation: "M-d", Category: CategoryCommand},
		{Name: "drop", Notation: "d", Category: CategoryCommand},
		{Name: "droptype", Notation: "D", Category: CategoryCommand},
		{Name: "eat", Notation: "e", Category: CategoryCommand},
		{Name: "esc", Notation: "^[", Category: CategoryCommand},
		{Name: "engrave", Notation: "E", Category: CategoryCommand},
		{Name: "enhance", Notation: "M-e", Category: CategoryCommand},
		{Name: "fire", Notation: "f", Category: CategoryCommand},
		{Name: "fight", Notation: "F", Category: CategoryCommand},
		{Name: "force", Notation: "M-f", Category: CategoryCommand},
		{Name: "glance", Notation: ";", Category: CategoryCommand},
		{Name: "history", Notation: "V", Category: CategoryCommand},
		{Name: "inventory", Notation: "i", Category: CategoryCommand},
		{Name: "inventtype", Notation: "I", Category: CategoryCommand},
		{Name: "invoke", Notation: "M-i", Category: CategoryCommand},
		{Name: "jump", Notation: "M-j", Category: CategoryCommand},
		{Name: "kick", Notation: "^d", Category: CategoryCommand},
		{Name: "known", Notation: `\`, Category: CategoryCommand},
		{Name: "knownclass", Notation: "`", Category: CategoryCommand},
		{Name: "look", Notation: ":", Category: CategoryCommand},
		{Name: "loot", Notation: "M-l", Category: CategoryCommand},
		{Name: "monster", Notation: "M-m", Category: CategoryCommand},
		{Name: "move", Notation: "m", Category: CategoryCommand},
		{Name: "movefar", Notation: "M", Category: CategoryCommand},
		{Name: "offer", Notation: "M-o", Category: CategoryCommand},
		{Name: "open", Notation: "o", Category: CategoryCommand},
		{Name: "options", Notation: "O", Category: CategoryCommand},
		{Name: "overview", Notation: "^o", Category: CategoryCommand},
		{Name: "pay", Notation: "p", Category: CategoryCommand},
		{Name: "pickup", Notation: ",", Category: CategoryCommand},
		{Name: "pray", Notation: "M-p", Category: CategoryCommand},
		{Name: "puton", Notation: "P", Category: CategoryCommand},
		{Name: "quaff", Notation: "q", Category: CategoryCommand},
		{Name: "quit", Notation: "M-q", Category: CategoryCommand},
		{Name: "quiver", Notation: "Q", Category: CategoryCommand},
		{Name: "read", Notation: "r", Category: CategoryCommand},
		{Name: "redraw", Notation: "^r", Category: CategoryCommand},
		{Name: "remove", Notation: "R", Category: CategoryCommand},
		{Name: "ride", Notation: "M-R", Category: CategoryCommand},
		{Name: "rub", Notation: "M-r", Category: CategoryCommand},
		{Name: "rush", Notation: "g", Category: CategoryCommand},
		{Name: "rush2", Notation: "G", Category: CategoryCommand},
		{Name: "save", Notation: "S", Category: CategoryCommand},
		{Name: "search", Notation: "s", Category: CategoryCommand},
		{Name: "seeall", Notation: "*", Category: CategoryCommand},
		{Name: "seeamulet", Notation: `"`, Category: CategoryCommand},
		{Name: "seearmor", Notation: "[", Category: CategoryCommand},
		{Name: "seegold", Aliases: []string{"dollar"}, Notation: "$", Category: CategoryCommand},
		{Name: "seerings", Notation: "=", Category: CategoryCommand},
		{Name: "seespells", Aliases: []string{"plus"}, Notation: "+", Category: CategoryCommand},
		{Name: "seetools", Notation: "(", Category: CategoryCommand},
		{Name: "seetrap", Notation: "^", Category: CategoryCommand},
		{Name: "seeweapon", Notation: ")", Category: CategoryCommand},
		{Name: "shell", Notation: "!", Category: CategoryCommand},
		{Name: "sit", Notation: "M-s", Category: CategoryCommand},
		{Name: "swap", Notation: "x", Category: CategoryCommand},
		{Name: "takeoff", Notation: "T", Category: CategoryCommand},
		{Name: "takeoffall", Notation: "A", Category: CategoryCommand},
		{Name: "teleport", Notation: "^t", Category: CategoryCommand},
		{Name: "throw", Notation: "t", Category: CategoryCommand},
		{Name: "tip", Notation: "M-T", Category: CategoryCommand},
		{Name: "travel", Notation: "_", Category: CategoryCommand},
		{Name: "turnundead", Notation: "M-t", Category: CategoryCommand},
		{Name: "twoweapon", Notation: "X", Category: CategoryCommand},
		{Name: "untrap", Notation: "M-u", Category: CategoryCommand},
		{Name: "version", Notation: "M-v", Category: CategoryCommand},
		{Name: "versionshort", Notation: "v", Category: CategoryCommand},
		{Name: "wear", Notation: "W", Category: CategoryCommand},
		{Name: "whatdoes", Notation: "&", Category: CategoryCommand},
		{Name: "whatis", Notation: "/", Category: CategoryCommand},
		{Name: "wield", Notation: "w", Category: CategoryCommand},
		{Name: "wipe", Notation: "M-w", Category: CategoryCommand},
		{Name: "zap", Notation: "z", Category: CategoryCommand},

		{Name: "minus", Notation: "-", Category: CategoryText},
		{Name: "space", Notation: " ", Category: CategoryText},
		{Name: "apos", Notation: "'", Category: CategoryText},
		{Name: "zero", Notation: "0", Category: CategoryText},
		{Name: "one", Notation: "1", Category: CategoryText},
		{Name: "two", Notation: "2", Category: CategoryText},
		{Name: "three", Notation: "3", Category: CategoryText},
		{Name: "four", Notation: "4", Category: CategoryText},
		{Name: "five", Notation: "5", Category: CategoryText},
		{Name: "six", Notation: "6", Category: CategoryText},
		{Name: "seven", Notation: "7", Category: CategoryText},
		{Name: "eight", Notation: "8", Category: CategoryText},
		{Name: "nine", Notation: "9", Category: CategoryText},

		{Name: "wizard detect", Notation: "^e", Category: CategoryWizard},
		{Name: "wizard genesis", Notation: "^g", Category: CategoryWizard},
		{Name: "wizard identify", Notation: "^i", Category: CategoryWizard},
		{Name: "wizard teleport", Notation: "^v", Category: CategoryWizard},
		{Name: "wizard map", Notation: "^f", Category: CategoryWizard},
		{Name: "wizard where", Notation: "^o", Category: CategoryWizard},
		{Name: "wizard wish", Notation: "^w", Category: CategoryWizard},
	}
}
