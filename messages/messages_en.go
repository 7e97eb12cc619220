package messages

import (
	"war/game"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "title", "===== WAR WORLD =====\n")

	// Setup
	message.SetString(lang, "setup.territory_header", "\n--- Territory %d registration ---\n")
	message.SetString(lang, "setup.name", "Name: ")
	message.SetString(lang, "setup.color", "Army color: ")
	message.SetString(lang, "setup.troops", "Number of troops: ")
	message.SetString(lang, "setup.invalid_name", "The name must be unique and not empty.\n")
	message.SetString(lang, "setup.invalid_troops", "Enter a whole number of at least 1.\n")
	message.SetString(lang, "setup.player_color", "Enter your army color: ")

	// Map
	message.SetString(lang, "map.header", "\n===== CURRENT MAP STATE =====\n")
	message.SetString(lang, "map.territory", "Territory")
	message.SetString(lang, "map.color", "Army color")
	message.SetString(lang, "map.troops", "Troops")

	// Mission
	message.SetString(lang, "mission.header", "\n===== YOUR MISSION =====\n")
	message.SetString(lang, game.ConquerTerritories.Describe(), "Conquer 3 enemy territories.\n")
	message.SetString(lang, game.EliminateColor.Describe(), "Eliminate all territories of a specific color.\n")
	message.SetString(lang, game.HoldTerritories.Describe(), "Hold 5 territories with at least 3 troops each.\n")
	message.SetString(lang, "mission.won", "\n🎉 Congratulations! You completed your mission!\n")
	message.SetString(lang, "mission.pending", "\nThe mission has not been completed yet.\n")

	// Menu
	message.SetString(lang, "menu.header", "\n===== MENU =====\n")
	message.SetString(lang, "menu.attack", "1 - Attack\n")
	message.SetString(lang, "menu.check", "2 - Check mission\n")
	message.SetString(lang, "menu.exit", "0 - Exit\n")
	message.SetString(lang, "menu.prompt", "\nChoose an option: ")
	message.SetString(lang, "menu.invalid", "Invalid option!\n")
	message.SetString(lang, "menu.continue", "\nPress ENTER to continue...")
	message.SetString(lang, "menu.leaving", "\nLeaving the game...\n")

	// Attack
	message.SetString(lang, "attack.origin", "\nEnter the origin territory: ")
	message.SetString(lang, "attack.destination", "Enter the destination territory: ")
	message.SetString(lang, "attack.rolls", "\nAttack: %d | Defense: %d\n")
	message.SetString(lang, "attack.victory", "Attack victory! An enemy troop was defeated.\n")
	message.SetString(lang, "attack.conquered", "You conquered the territory!\n")
	message.SetString(lang, "attack.defended", "Successful defense! You lost a troop.\n")

	// Errors
	message.SetString(lang, "error.registry", "Error creating the map: %v\n")
	message.SetString(lang, "error.invalid_territory", "Invalid territory!\n")
	message.SetString(lang, "error.unauthorized", "You can only attack from territories you control!\n")
	message.SetString(lang, "error.insufficient_troops", "Not enough troops to attack!\n")
	message.SetString(lang, "error.self_attack", "A territory cannot attack itself!\n")
}
