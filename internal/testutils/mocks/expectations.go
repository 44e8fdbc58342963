// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	promptmock "github.com/KirkDiggler/battle-arena/internal/prompt/mock"
	"github.com/KirkDiggler/battle-arena/internal/repositories/savegame"
	savegamemock "github.com/KirkDiggler/battle-arena/internal/repositories/savegame/mock"
)

// CaptureSay records every message the prompter is asked to show
func CaptureSay(mockPrompter *promptmock.MockPrompter, said *[]string) {
	mockPrompter.EXPECT().
		Say(gomock.Any()).
		Do(func(message string) {
			*said = append(*said, message)
		}).
		AnyTimes()
}

// ExpectChoice sets up a single menu answer
func ExpectChoice(
	ctx context.Context, mockPrompter *promptmock.MockPrompter,
	description string, options []string, choice int,
) *gomock.Call {
	return mockPrompter.EXPECT().
		Choose(ctx, description, options).
		Return(choice, nil)
}

// ExpectLoad sets up a load returning record, or err when set
func ExpectLoad(
	ctx context.Context, mockRepo *savegamemock.MockRepository,
	record *savegame.Record, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Load(ctx, &savegame.LoadInput{}).
			Return(nil, err)
	}

	return mockRepo.EXPECT().
		Load(ctx, &savegame.LoadInput{}).
		Return(&savegame.LoadOutput{Record: record}, nil)
}

// ExpectSave sets up a save of exactly record.
// A nil record accepts any save.
func ExpectSave(
	ctx context.Context, mockRepo *savegamemock.MockRepository,
	record *savegame.Record, err error,
) *gomock.Call {
	var input any = gomock.Any()
	if record != nil {
		input = &savegame.SaveInput{Record: record}
	}

	if err != nil {
		return mockRepo.EXPECT().
			Save(ctx, input).
			Return(nil, err)
	}

	return mockRepo.EXPECT().
		Save(ctx, input).
		Return(&savegame.SaveOutput{}, nil)
}
