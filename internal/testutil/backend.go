package testutil

import (
	"Meal-Planner-Backend/pkg/backend"
	"context"
	"encoding/json"
)

// FakeBackend is a programmable backend.Client. Unset funcs answer with Err.
type FakeBackend struct {
	Err error

	HealthFunc              func(ctx context.Context) error
	ChatFunc                func(ctx context.Context, body any) (json.RawMessage, error)
	SaveMacrosFunc          func(ctx context.Context, body map[string]any) ([]byte, error)
	GetUserMacrosFunc       func(ctx context.Context, username, date string) (json.RawMessage, error)
	GetUserWeeklyMacrosFunc func(ctx context.Context, username, startDate, endDate string) (json.RawMessage, error)
	AnalyzeFoodMacrosFunc   func(ctx context.Context, form backend.Form) (json.RawMessage, error)
	IdentifyFunc            func(ctx context.Context, file backend.File) (json.RawMessage, error)
}

var _ backend.Client = (*FakeBackend)(nil)

func (f *FakeBackend) Health(ctx context.Context) error {
	if f.HealthFunc != nil {
		return f.HealthFunc(ctx)
	}
	return f.Err
}

func (f *FakeBackend) Chat(ctx context.Context, body any) (json.RawMessage, error) {
	if f.ChatFunc != nil {
		return f.ChatFunc(ctx, body)
	}
	return nil, f.Err
}

func (f *FakeBackend) SaveMacros(ctx context.Context, body map[string]any) ([]byte, error) {
	if f.SaveMacrosFunc != nil {
		return f.SaveMacrosFunc(ctx, body)
	}
	return nil, f.Err
}

func (f *FakeBackend) GetUserMacros(ctx context.Context, username, date string) (json.RawMessage, error) {
	if f.GetUserMacrosFunc != nil {
		return f.GetUserMacrosFunc(ctx, username, date)
	}
	return nil, f.Err
}

func (f *FakeBackend) GetUserWeeklyMacros(ctx context.Context, username, startDate, endDate string) (json.RawMessage, error) {
	if f.GetUserWeeklyMacrosFunc != nil {
		return f.GetUserWeeklyMacrosFunc(ctx, username, startDate, endDate)
	}
	return nil, f.Err
}

func (f *FakeBackend) AnalyzeFoodMacros(ctx context.Context, form backend.Form) (json.RawMessage, error) {
	if f.AnalyzeFoodMacrosFunc != nil {
		return f.AnalyzeFoodMacrosFunc(ctx, form)
	}
	return nil, f.Err
}

func (f *FakeBackend) IdentifyIngredients(ctx context.Context, file backend.File) (json.RawMessage, error) {
	if f.IdentifyFunc != nil {
		return f.IdentifyFunc(ctx, file)
	}
	return nil, f.Err
}
