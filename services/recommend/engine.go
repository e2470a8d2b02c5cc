// Package recommend turns the concierge interview answers into a single
// vehicle recommendation. Scoring is a pure sum, so calling it after every
// answer gives the same interim results as scoring the full set once.
package recommend

import (
	"errors"

	"apexdrive/models"
)

// ErrInvalidCatalog is returned when there is no vehicle to recommend. The
// catalog is static configuration, so hitting this is a startup-time defect.
var ErrInvalidCatalog = errors.New("recommend: catalog is empty")

// Scores returns the aggregate weight every catalog vehicle collected across
// the given answers. Vehicles no answer mentions score zero.
func Scores(answers []models.QuizOption, catalog []models.Vehicle) map[string]int {
	scores := make(map[string]int, len(catalog))
	for _, v := range catalog {
		scores[v.ID] = 0
	}
	for _, opt := range answers {
		for id, w := range opt.Weight {
			if _, ok := scores[id]; ok {
				scores[id] += w
			}
		}
	}
	return scores
}

// Recommend returns the vehicle with the strictly greatest aggregate score.
// Ties resolve to the earlier catalog entry: a later candidate must beat the
// current best, not merely equal it. With no answers every score is zero and
// the first catalog vehicle wins, which is intentional.
func Recommend(answers []models.QuizOption, catalog []models.Vehicle) (models.Vehicle, error) {
	if len(catalog) == 0 {
		return models.Vehicle{}, ErrInvalidCatalog
	}

	scores := Scores(answers, catalog)

	best := catalog[0]
	for _, v := range catalog[1:] {
		if scores[v.ID] > scores[best.ID] {
			best = v
		}
	}
	return best, nil
}
