package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apexdrive/catalog"
	"apexdrive/models"
)

func testCatalog() []models.Vehicle {
	return []models.Vehicle{
		{ID: "taycan", Name: "Taycan"},
		{ID: "911", Name: "911"},
		{ID: "cayenne", Name: "Cayenne"},
	}
}

func option(weight map[string]int) models.QuizOption {
	return models.QuizOption{Value: "opt", Label: "opt", Weight: weight}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name     string
		answers  []models.QuizOption
		expected string
	}{
		{
			name: "clear winner",
			answers: []models.QuizOption{
				option(map[string]int{"cayenne": 3, "taycan": 1}),
				option(map[string]int{"cayenne": 2, "911": 1}),
			},
			expected: "cayenne",
		},
		{
			name: "tie resolves to earlier catalog entry",
			answers: []models.QuizOption{
				option(map[string]int{"taycan": 3, "911": 1}),
				option(map[string]int{"taycan": 1, "911": 3}),
			},
			expected: "taycan",
		},
		{
			name:     "no answers returns first catalog vehicle",
			answers:  nil,
			expected: "taycan",
		},
		{
			name: "weights for unknown vehicles are ignored",
			answers: []models.QuizOption{
				option(map[string]int{"gt3rs": 99, "911": 1}),
			},
			expected: "911",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Recommend(tt.answers, testCatalog())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.ID)
		})
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	_, err := Recommend(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestRecommend_Deterministic(t *testing.T) {
	answers := []models.QuizOption{
		option(map[string]int{"taycan": 2, "911": 2, "cayenne": 1}),
		option(map[string]int{"911": 1, "cayenne": 2}),
	}

	first, err := Recommend(answers, testCatalog())
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		got, err := Recommend(answers, testCatalog())
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)
	}
}

func TestRecommend_IncrementalMatchesBatch(t *testing.T) {
	// Scoring is a pure sum, so re-running the engine after each answer
	// must converge on the same result as scoring everything at once.
	answers := []models.QuizOption{
		option(map[string]int{"taycan": 1, "911": 3}),
		option(map[string]int{"cayenne": 3}),
		option(map[string]int{"911": 2, "cayenne": 1}),
	}

	batch := Scores(answers, testCatalog())

	incremental := map[string]int{}
	for _, v := range testCatalog() {
		incremental[v.ID] = 0
	}
	for _, a := range answers {
		partial := Scores([]models.QuizOption{a}, testCatalog())
		for id, s := range partial {
			incremental[id] += s
		}
	}

	assert.Equal(t, batch, incremental)
}

func TestScores_CoversWholeCatalog(t *testing.T) {
	scores := Scores(nil, testCatalog())
	require.Len(t, scores, 3)
	for _, s := range scores {
		assert.Zero(t, s)
	}
}

func TestRecommend_RealCatalog(t *testing.T) {
	// A heavily sport-biased interview from the shipped quiz should land on
	// the 911.
	answers := []models.QuizOption{
		*catalog.OptionByValue(catalog.QuestionByID("driving_style"), "performance"),
		*catalog.OptionByValue(catalog.QuestionByID("usage"), "track"),
		*catalog.OptionByValue(catalog.QuestionByID("vehicle_size"), "compact"),
		*catalog.OptionByValue(catalog.QuestionByID("priority"), "heritage"),
		*catalog.OptionByValue(catalog.QuestionByID("seating"), "low-sports"),
	}

	got, err := Recommend(answers, catalog.Vehicles)
	require.NoError(t, err)
	assert.Equal(t, "911", got.ID)
}
