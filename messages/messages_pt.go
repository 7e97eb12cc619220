package messages

import (
	"war/game"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, "title", "===== MUNDO WAR =====\n")

	// Cadastro
	message.SetString(lang, "setup.territory_header", "\n--- Cadastro do Território %d ---\n")
	message.SetString(lang, "setup.name", "Nome: ")
	message.SetString(lang, "setup.color", "Cor do exército: ")
	message.SetString(lang, "setup.troops", "Número de tropas: ")
	message.SetString(lang, "setup.invalid_name", "O nome deve ser único e não vazio.\n")
	message.SetString(lang, "setup.invalid_troops", "Digite um número inteiro maior ou igual a 1.\n")
	message.SetString(lang, "setup.player_color", "Digite a cor do seu exército: ")

	// Mapa
	message.SetString(lang, "map.header", "\n===== ESTADO ATUAL DO MAPA =====\n")
	message.SetString(lang, "map.territory", "Território")
	message.SetString(lang, "map.color", "Cor do Exército")
	message.SetString(lang, "map.troops", "Tropas")

	// Missão
	message.SetString(lang, "mission.header", "\n===== SUA MISSÃO =====\n")
	message.SetString(lang, game.ConquerTerritories.Describe(), "Conquistar 3 territórios inimigos.\n")
	message.SetString(lang, game.EliminateColor.Describe(), "Eliminar todos os territórios de uma cor específica.\n")
	message.SetString(lang, game.HoldTerritories.Describe(), "Manter 5 territórios com pelo menos 3 tropas cada.\n")
	message.SetString(lang, "mission.won", "\n🎉 Parabéns! Você cumpriu sua missão!\n")
	message.SetString(lang, "mission.pending", "\nA missão ainda não foi concluída.\n")

	// Menu
	message.SetString(lang, "menu.header", "\n===== MENU =====\n")
	message.SetString(lang, "menu.attack", "1 - Atacar\n")
	message.SetString(lang, "menu.check", "2 - Verificar missão\n")
	message.SetString(lang, "menu.exit", "0 - Sair\n")
	message.SetString(lang, "menu.prompt", "\nEscolha uma opção: ")
	message.SetString(lang, "menu.invalid", "Opção inválida!\n")
	message.SetString(lang, "menu.continue", "\nPressione ENTER para continuar...")
	message.SetString(lang, "menu.leaving", "\nSaindo do jogo...\n")

	// Ataque
	message.SetString(lang, "attack.origin", "\nDigite o território de origem: ")
	message.SetString(lang, "attack.destination", "Digite o território de destino: ")
	message.SetString(lang, "attack.rolls", "\nAtaque: %d | Defesa: %d\n")
	message.SetString(lang, "attack.victory", "Vitória no ataque! Um inimigo foi derrotado.\n")
	message.SetString(lang, "attack.conquered", "Você conquistou o território!\n")
	message.SetString(lang, "attack.defended", "Defesa bem-sucedida! Você perdeu uma tropa.\n")

	// Erros
	message.SetString(lang, "error.registry", "Erro ao criar o mapa: %v\n")
	message.SetString(lang, "error.invalid_territory", "Território inválido!\n")
	message.SetString(lang, "error.unauthorized", "Você só pode atacar de territórios que controla!\n")
	message.SetString(lang, "error.insufficient_troops", "Tropas insuficientes para atacar!\n")
	message.SetString(lang, "error.self_attack", "Um território não pode atacar a si mesmo!\n")
}
