package order_test

import (
	"fmt"
	"testing"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.UnknownStage))
		assert.Equal(t, 1, int(order.OrderReceived))
		assert.Equal(t, 2, int(order.RetrievedFromManufacturer))
		assert.Equal(t, 3, int(order.AtPhotographyStudio))
		assert.Equal(t, 4, int(order.CollectedFromStudio))
		assert.Equal(t, 5, int(order.ReturnedToManufacturer))
		assert.Equal(t, 6, int(order.PrePrinting))
		assert.Equal(t, 7, int(order.Printing))
		assert.Equal(t, 8, int(order.PostPrinting))
		assert.Equal(t, 9, int(order.PhotosDelivered))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		stages := order.Stages()

		for i, stage1 := range stages {
			for j, stage2 := range stages {
				if i != j {
					assert.NotEqual(t, stage1, stage2,
						"stages at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStages(t *testing.T) {
	t.Run("should return all nine stages in process order", func(t *testing.T) {
		stages := order.Stages()

		require.Len(t, stages, 9)
		assert.Equal(t, order.OrderReceived, stages[0])
		assert.Equal(t, order.PhotosDelivered, stages[8])

		for i := 1; i < len(stages); i++ {
			assert.Equal(t, int(stages[i-1])+1, int(stages[i]),
				"stage at index %d should directly follow its predecessor", i)
		}
	})

	t.Run("should return a fresh slice on every call", func(t *testing.T) {
		first := order.Stages()
		first[0] = order.PhotosDelivered

		second := order.Stages()
		assert.Equal(t, order.OrderReceived, second[0])
	})
}

func TestStage_Validate(t *testing.T) {
	t.Run("should validate valid stages", func(t *testing.T) {
		for _, stage := range order.Stages() {
			t.Run(fmt.Sprintf("should validate %s stage", stage.String()), func(t *testing.T) {
				err := stage.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown stage", func(t *testing.T) {
		err := order.UnknownStage.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "stage")
		assert.Contains(t, err.Error(), "0 is not a valid stage")
	})

	t.Run("should reject invalid stage values", func(t *testing.T) {
		invalidStages := []order.Stage{
			order.Stage(-1),
			order.Stage(10),
			order.Stage(100),
		}

		for _, stage := range invalidStages {
			t.Run(fmt.Sprintf("should reject stage value %d", int(stage)), func(t *testing.T) {
				err := stage.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid stage", int(stage)))
			})
		}
	})
}

func TestStage_String(t *testing.T) {
	t.Run("should return correct name for valid stages", func(t *testing.T) {
		testCases := []struct {
			stage    order.Stage
			expected string
		}{
			{order.OrderReceived, "Order Received"},
			{order.RetrievedFromManufacturer, "Retrieved from Manufacturer"},
			{order.AtPhotographyStudio, "At Photography Studio"},
			{order.CollectedFromStudio, "Collected from Studio"},
			{order.ReturnedToManufacturer, "Returned to Manufacturer"},
			{order.PrePrinting, "Pre Printing"},
			{order.Printing, "Printing"},
			{order.PostPrinting, "Post Printing"},
			{order.PhotosDelivered, "Photos Delivered"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.stage)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.stage.String())
			})
		}
	})

	t.Run("should return Unknown for invalid stages", func(t *testing.T) {
		invalidStages := []order.Stage{
			order.UnknownStage,
			order.Stage(-1),
			order.Stage(10),
		}

		for _, stage := range invalidStages {
			assert.Equal(t, "Unknown", stage.String())
		}
	})
}

func TestStageFromString(t *testing.T) {
	t.Run("should resolve every stage name", func(t *testing.T) {
		for _, stage := range order.Stages() {
			resolved, err := order.StageFromString(stage.String())

			require.NoError(t, err)
			assert.Equal(t, stage, resolved)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "Shipped", "order received"} {
			resolved, err := order.StageFromString(name)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Equal(t, order.UnknownStage, resolved)
		}
	})
}

func TestStage_Index(t *testing.T) {
	t.Run("should return zero-based position in the process", func(t *testing.T) {
		for i, stage := range order.Stages() {
			assert.Equal(t, i, stage.Index())
		}
	})

	t.Run("should return -1 for invalid stages", func(t *testing.T) {
		assert.Equal(t, -1, order.UnknownStage.Index())
		assert.Equal(t, -1, order.Stage(10).Index())
	})
}

func TestStage_IsTerminal(t *testing.T) {
	t.Run("should report only Photos Delivered as terminal", func(t *testing.T) {
		for _, stage := range order.Stages() {
			assert.Equal(t, stage == order.PhotosDelivered, stage.IsTerminal(),
				"unexpected terminal flag for %s", stage)
		}
	})
}

func TestStage_Next(t *testing.T) {
	t.Run("should step through the full process", func(t *testing.T) {
		stages := order.Stages()

		for i := 0; i < len(stages)-1; i++ {
			next, err := stages[i].Next()

			require.NoError(t, err)
			assert.Equal(t, stages[i+1], next)
		}
	})

	t.Run("should refuse to advance past the terminal stage", func(t *testing.T) {
		next, err := order.PhotosDelivered.Next()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderAtTerminalStage)
		assert.Equal(t, order.UnknownStage, next)
	})

	t.Run("should reject invalid stages", func(t *testing.T) {
		next, err := order.UnknownStage.Next()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Equal(t, order.UnknownStage, next)
	})
}
