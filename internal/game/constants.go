package game

// Main menu options, compared against the trimmed input line
const (
	OptionViewCharacter = "1"
	OptionExploreZones  = "2"
	OptionFindJob       = "3"
	OptionQuit          = "4"
)

// BackSelection returns from a sub-menu to the main menu
const BackSelection = 0

// Console text
const (
	MsgWelcome          = "Welcome to LIFE - The Next Gen RPG"
	PromptName          = "Enter your character's name: "
	PromptBackground    = "Enter your background (e.g., street kid, corporate heir): "
	PromptMenuOption    = "Select an option: "
	PromptZone          = "Select a zone to visit (or 0 to go back): "
	PromptJob           = "Select a job to apply for (or 0 to go back): "
	HeaderMainMenu      = "\n--- Main Menu ---"
	HeaderCharacter     = "\n--- Character Stats ---"
	HeaderZones         = "\n--- NeoCity Zones ---"
	HeaderJobMarket     = "\n--- Job Market ---"
	MsgInvalidInput     = "Invalid input."
	MsgInvalidZone      = "Invalid zone selection."
	MsgInvalidJob       = "Invalid job selection."
	MsgInvalidOption    = "Invalid option, please try again."
	MsgGoodbye          = "Exiting game. Goodbye!"
	FormatZoneArrival   = "\nYou are now in: %s\n"
	FormatZoneDesc      = "Description: %s\n"
	FormatJobAccepted   = "Congratulations! You are now a %s.\n"
	FormatZoneListEntry = "%d. %s\n"
	FormatJobListEntry  = "%d. %s (%s) - $%d\n"
)

var mainMenuLines = []string{
	"1. View Character Stats",
	"2. Explore NeoCity Zones",
	"3. Find a Job",
	"4. Quit",
}
