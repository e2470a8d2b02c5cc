package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"apexdrive/catalog"
	"apexdrive/models"
	"apexdrive/services/intelligence"
	"apexdrive/services/recommend"
	"apexdrive/utils"
)

// QuizAnswerInput names a selected option by question and value.
type QuizAnswerInput struct {
	QuestionID string `json:"questionId" binding:"required"`
	Value      string `json:"value" binding:"required"`
}

// resolveAnswers maps answer inputs onto the catalog's quiz options.
func resolveAnswers(inputs []QuizAnswerInput) ([]models.QuizOption, error) {
	answers := make([]models.QuizOption, 0, len(inputs))
	for _, in := range inputs {
		q := catalog.QuestionByID(in.QuestionID)
		if q == nil {
			return nil, fmt.Errorf("unknown question %q", in.QuestionID)
		}
		opt := catalog.OptionByValue(q, in.Value)
		if opt == nil {
			return nil, fmt.Errorf("unknown option %q for question %q", in.Value, in.QuestionID)
		}
		answers = append(answers, *opt)
	}
	return answers, nil
}

// RecommendHandler scores the submitted answers against the vehicle catalog.
// Partial answer sets are fine; the presentation layer calls this after every
// answer to show the interim suggestion.
func RecommendHandler(c *gin.Context) {
	var input struct {
		Answers []QuizAnswerInput `json:"answers"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	answers, err := resolveAnswers(input.Answers)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid answers", err.Error())
		return
	}

	vehicle, err := recommend.Recommend(answers, catalog.Vehicles)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "recommendation failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommended": vehicle,
		"scores":      recommend.Scores(answers, catalog.Vehicles),
	})
}

// NarrateHandler wraps a recommendation with a generated prose rationale.
// Available only when a Gemini API key is configured.
func NarrateHandler(narrator intelligence.Narrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if narrator == nil {
			utils.JSONError(c, http.StatusServiceUnavailable, "narration not configured", "")
			return
		}

		var input struct {
			Answers []QuizAnswerInput `json:"answers"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		answers, err := resolveAnswers(input.Answers)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid answers", err.Error())
			return
		}

		vehicle, err := recommend.Recommend(answers, catalog.Vehicles)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "recommendation failed", err.Error())
			return
		}

		scores := recommend.Scores(answers, catalog.Vehicles)
		text, err := narrator.Narrate(c.Request.Context(), vehicle, answers, scores)
		if err != nil {
			utils.GetLogger().Warn("narration failed", zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "narration failed", err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"recommended": vehicle,
			"scores":      scores,
			"narration":   text,
		})
	}
}
