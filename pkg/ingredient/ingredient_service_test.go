package ingredient

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/testutil"
	"Meal-Planner-Backend/pkg/backend"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var photo = backend.File{FieldName: "file", FileName: "fridge.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")}

func TestMergeIngredients(t *testing.T) {
	assert.Equal(t, []string{"egg"}, MergeIngredients([]string{"egg"}, []string{"egg"}))
	assert.Equal(t,
		[]string{"egg", "milk", "Egg", "rice"},
		MergeIngredients([]string{"egg", "milk", "egg"}, []string{"Egg", "", "rice", "milk"}),
	)
	assert.Empty(t, MergeIngredients(nil, nil))
}

func TestValidateImage(t *testing.T) {
	assert.ErrorIs(t, ValidateImage(backend.File{}), domain.ErrNoImage)
	assert.ErrorIs(t, ValidateImage(backend.File{Data: []byte("x"), ContentType: "text/plain"}), domain.ErrNotImage)
	assert.NoError(t, ValidateImage(photo))
}

func TestMockIngredients(t *testing.T) {
	svc := NewIngredientService(&testutil.FakeBackend{}, nil, true).(*ingredientService)
	for i := 0; i < 50; i++ {
		picks := svc.MockIngredients()
		assert.GreaterOrEqual(t, len(picks), 3)
		assert.LessOrEqual(t, len(picks), 8)
		assert.Len(t, MergeIngredients(picks, nil), len(picks), "picks are unique")
		for _, p := range picks {
			assert.Contains(t, mockIngredients, p)
		}
	}
}

func TestIdentifyIngredients(t *testing.T) {
	ctx := context.Background()

	t.Run("backend down uses mock", func(t *testing.T) {
		fake := &testutil.FakeBackend{Err: domain.ErrBackendUnavailable}
		res, err := NewIngredientService(fake, nil, true).IdentifyIngredients(ctx, photo, "alice")
		require.NoError(t, err)

		resp := res.(domain.IdentifyIngredientsResponse)
		assert.True(t, resp.Success)
		assert.Equal(t, domain.SourceMock, resp.Source)
		assert.NotEmpty(t, resp.Ingredients)
	})

	t.Run("identify failure after healthy probe uses fallback mock", func(t *testing.T) {
		fake := &testutil.FakeBackend{
			HealthFunc: func(context.Context) error { return nil },
			Err:        &domain.UpstreamError{StatusCode: 500},
		}
		res, err := NewIngredientService(fake, nil, true).IdentifyIngredients(ctx, photo, "alice")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceMockFallback, res.(domain.IdentifyIngredientsResponse).Source)
	})

	t.Run("passes backend response through", func(t *testing.T) {
		fake := &testutil.FakeBackend{
			HealthFunc: func(context.Context) error { return nil },
			IdentifyFunc: func(_ context.Context, file backend.File) (json.RawMessage, error) {
				assert.Equal(t, "fridge.jpg", file.FileName)
				return json.RawMessage(`{"success":true,"ingredients":["kale"]}`), nil
			},
		}
		res, err := NewIngredientService(fake, nil, true).IdentifyIngredients(ctx, photo, "alice")
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"ingredients":["kale"]}`, string(res.(json.RawMessage)))
	})

	t.Run("archives the photo when storage is configured", func(t *testing.T) {
		s3 := &testutil.FakeS3{}
		fake := &testutil.FakeBackend{
			HealthFunc: func(context.Context) error { return nil },
			IdentifyFunc: func(context.Context, backend.File) (json.RawMessage, error) {
				return json.RawMessage(`{"success":true,"ingredients":["kale"]}`), nil
			},
		}
		res, err := NewIngredientService(fake, s3, true).IdentifyIngredients(ctx, photo, "alice")
		require.NoError(t, err)

		body := res.(map[string]any)
		assert.Contains(t, body["image_url"], "ingredients/ingredients-alice")
		assert.Len(t, s3.Objects, 1)
	})

	t.Run("archive failure is not fatal", func(t *testing.T) {
		s3 := &testutil.FakeS3{Err: errors.New("denied")}
		res, err := NewIngredientService(&testutil.FakeBackend{Err: domain.ErrBackendUnavailable}, s3, true).IdentifyIngredients(ctx, photo, "")
		require.NoError(t, err)
		assert.Empty(t, res.(domain.IdentifyIngredientsResponse).ImageURL)
	})

	t.Run("fail policy surfaces the error", func(t *testing.T) {
		fake := &testutil.FakeBackend{Err: domain.ErrBackendUnavailable}
		_, err := NewIngredientService(fake, nil, false).IdentifyIngredients(ctx, photo, "alice")
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	})

	t.Run("rejects non images", func(t *testing.T) {
		_, err := NewIngredientService(&testutil.FakeBackend{}, nil, true).IdentifyIngredients(ctx, backend.File{Data: []byte("x"), ContentType: "application/pdf"}, "alice")
		assert.ErrorIs(t, err, domain.ErrNotImage)
	})
}
