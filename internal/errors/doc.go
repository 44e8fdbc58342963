// Package errors provides the coded error type used across battle-arena.
//
// Every failure the game can report carries a Code, a player-facing Message
// and optional metadata. Callers branch on the code and show the message:
//
//	if err := player.Equip(idx); err != nil {
//	    if errors.IsOutOfRange(err) {
//	        prompter.Say(errors.GetMessage(err))
//	    }
//	}
//
// Wrapping keeps the original code so a repository NotFound is still a
// NotFound once the orchestrator adds its own context:
//
//	out, err := repo.Load(ctx, &savegame.LoadInput{})
//	if err != nil {
//	    return errors.Wrap(err, "no saved game found")
//	}
//
// # Codes used by the game
//
//   - OutOfRange: an item index outside the player's inventory
//   - FailedPrecondition: removing an item when nothing is equipped
//   - NotFound: no save record
//   - DataLoss: a save record that cannot be decoded
//   - InvalidArgument: bad configuration or a record naming an unknown job
//   - Unavailable: the input stream closed
//   - Canceled: the game context was cancelled
//   - Internal: anything else
package errors
