package game

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/battle-arena/internal/engine"
	"github.com/KirkDiggler/battle-arena/internal/entities"
	"github.com/KirkDiggler/battle-arena/internal/errors"
	"github.com/KirkDiggler/battle-arena/internal/repositories/savegame"
)

// Menu options in display order
var (
	startMenuOptions = []string{"Start New Game", "Load Game"}
	battleOptions    = []string{"Attack", "Equip Item", "Remove Current Item", "Save"}
	yesNoOptions     = []string{"Yes", "No"}
)

const (
	optionStartNewGame = 0
	optionLoadGame     = 1

	optionAttack  = 0
	optionEquip   = 1
	optionUnequip = 2
	optionSave    = 3

	optionYes = 0
)

func (o *orchestrator) startMenu(ctx context.Context) error {
	choice, err := o.prompter.Choose(ctx, "Welcome to the Battle Arena!", startMenuOptions)
	if err != nil {
		return err
	}

	switch choice {
	case optionStartNewGame:
		o.setScene(SceneCharacterSelection)
	case optionLoadGame:
		o.loadGame(ctx)
	}
	return nil
}

// loadGame leaves the state untouched unless the whole record restores.
func (o *orchestrator) loadGame(ctx context.Context) {
	output, err := o.saveRepo.Load(ctx, &savegame.LoadInput{})
	if err != nil {
		o.reportFailure("Could not load the game", err)
		return
	}

	restored, err := o.restore(output.Record)
	if err != nil {
		o.reportFailure("Could not load the game", err)
		return
	}

	o.state.Player = restored.player
	o.state.PlayerName = restored.player.Name
	o.state.Roster = restored.roster
	o.state.EnemyIndex = restored.enemyIndex

	slog.Info("Game loaded",
		"player_id", restored.player.ID,
		"job", string(restored.player.Job),
		"enemy_index", restored.enemyIndex,
	)

	o.prompter.Say(fmt.Sprintf("Welcome back, %s!", restored.player.Name))
	o.setScene(SceneBattle)
}

func (o *orchestrator) characterSelection(ctx context.Context) error {
	name, err := o.readName(ctx)
	if err != nil {
		return err
	}

	jobs := entities.Jobs()
	options := make([]string, len(jobs))
	for i, job := range jobs {
		options[i] = string(job.Name)
	}

	choice, err := o.prompter.Choose(ctx, "Please select your class.", options)
	if err != nil {
		return err
	}
	job := &jobs[choice]

	o.state.Player = entities.NewPlayer(o.idGen.Generate(), name, job)
	o.state.PlayerName = name

	slog.Info("Character created",
		"player_id", o.state.Player.ID,
		"job", string(job.Name),
	)

	o.prompter.Say(fmt.Sprintf("%s the %s enters the arena!", name, job.Name))
	o.setScene(SceneBattle)
	return nil
}

func (o *orchestrator) readName(ctx context.Context) (string, error) {
	for {
		name, err := o.prompter.ReadLine(ctx, "Please enter your name.")
		if err != nil {
			return "", err
		}

		name = strings.TrimSpace(name)
		if name == "" {
			o.prompter.Say("Your name cannot be empty.")
			continue
		}

		confirm, err := o.prompter.Choose(ctx,
			fmt.Sprintf("You've entered %s, are you sure you want to keep this name?", name),
			yesNoOptions,
		)
		if err != nil {
			return "", err
		}
		if confirm == optionYes {
			return name, nil
		}
	}
}

func (o *orchestrator) battle(ctx context.Context) error {
	player := o.state.Player
	enemy := o.state.CurrentEnemy()
	if player == nil || enemy == nil {
		return errors.Internal("battle started without a player and an enemy")
	}

	o.prompter.Say(describePlayer(player))
	o.prompter.Say(describeEnemy(enemy))

	choice, err := o.prompter.Choose(ctx, "What will you do?", battleOptions)
	if err != nil {
		return err
	}

	switch choice {
	case optionAttack:
		return o.attack(ctx, player, enemy)
	case optionEquip:
		return o.equip(ctx, player)
	case optionUnequip:
		o.unequip(player)
	case optionSave:
		o.saveGame(ctx)
	}
	return nil
}

func (o *orchestrator) attack(ctx context.Context, player *entities.Player, enemy *entities.Entity) error {
	round, err := o.engine.ResolveRound(ctx, &engine.ResolveRoundInput{
		Player: player,
		Enemy:  enemy,
	})
	if err != nil {
		return errors.Wrap(err, "failed to resolve round")
	}

	o.prompter.Say(fmt.Sprintf("You attack the %s for %s damage!",
		enemy.Name, formatStat(round.PlayerAttack.Damage)))
	if round.EnemyAttack != nil {
		o.prompter.Say(fmt.Sprintf("The %s attacks you for %s damage!",
			enemy.Name, formatStat(round.EnemyAttack.Damage)))
	}

	if round.PlayerDefeated {
		o.prompter.Say("You have been defeated...")
		o.setScene(SceneRestartMenu)
	}

	if round.EnemyDefeated {
		o.prompter.Say(fmt.Sprintf("You defeated the %s!", enemy.Name))

		if !o.state.HasNextEnemy() {
			o.prompter.Say("You have defeated every enemy in the arena. You win!")
			o.setScene(SceneRestartMenu)
			return nil
		}

		o.state.EnemyIndex++
		o.prompter.Say(fmt.Sprintf("A %s steps into the arena!", o.state.CurrentEnemy().Name))
	}

	return nil
}

func (o *orchestrator) equip(ctx context.Context, player *entities.Player) error {
	names := player.ItemNames()
	if len(names) == 0 {
		o.prompter.Say("You have no items.")
		return nil
	}

	choice, err := o.prompter.Choose(ctx, "Which item would you like to equip?", names)
	if err != nil {
		return err
	}

	if err := player.Equip(choice); err != nil {
		o.prompter.Say(errors.GetMessage(err))
		return nil
	}

	item, _ := player.EquippedItem()
	o.prompter.Say(fmt.Sprintf("You equipped the %s.", item.Name))
	return nil
}

func (o *orchestrator) unequip(player *entities.Player) {
	item, _ := player.EquippedItem()
	if err := player.Unequip(); err != nil {
		o.prompter.Say(errors.GetMessage(err))
		return
	}

	o.prompter.Say(fmt.Sprintf("You unequipped the %s.", item.Name))
}

func (o *orchestrator) saveGame(ctx context.Context) {
	_, err := o.saveRepo.Save(ctx, &savegame.SaveInput{Record: recordFromState(o.state)})
	if err != nil {
		o.reportFailure("Could not save the game", err)
		return
	}

	o.prompter.Say("Game saved.")
}

func (o *orchestrator) restartMenu(ctx context.Context) error {
	choice, err := o.prompter.Choose(ctx, "Would you like to play again?", yesNoOptions)
	if err != nil {
		return err
	}

	if choice != optionYes {
		o.prompter.Say("Thanks for playing!")
		o.state.GameOver = true
		return nil
	}

	o.state.ResetRoster(entities.NewRoster(o.idGen))
	o.state.Player = nil
	o.state.PlayerName = ""
	o.setScene(SceneCharacterSelection)
	return nil
}

func (o *orchestrator) reportFailure(action string, err error) {
	slog.Warn(action,
		"code", errors.GetCode(err).String(),
		"error", err,
	)
	o.prompter.Say(fmt.Sprintf("%s: %s", action, errors.GetMessage(err)))
}

func describePlayer(p *entities.Player) string {
	equipped := "Nothing"
	if item, ok := p.EquippedItem(); ok {
		equipped = item.Name
	}

	return fmt.Sprintf("%s\nHealth: %s\nAttack Power: %s\nDefense Power: %s\nEquipped: %s",
		p.Name,
		formatStat(p.DisplayHealth()),
		formatStat(p.DerivedAttack()),
		formatStat(p.DerivedDefense()),
		equipped,
	)
}

func describeEnemy(e *entities.Entity) string {
	return fmt.Sprintf("%s\nHealth: %s\nAttack Power: %s\nDefense Power: %s",
		e.Name,
		formatStat(e.DisplayHealth()),
		formatStat(e.DerivedAttack()),
		formatStat(e.DerivedDefense()),
	)
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
