package classification

import (
	"testing"

	"github.com/Veraticus/studmoney/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDetector(t *testing.T) {
	pd := NewDefaultDetector()
	assert.Equal(t, len(DefaultPatterns()), pd.GetPatternCount())

	tests := []struct {
		name     string
		text     string
		expected model.Category
	}{
		{name: "coffee shop", text: "STARBUCKS STORE #1234", expected: model.CategoryFood},
		{name: "grocery", text: "Whole Foods Market", expected: model.CategoryFood},
		{name: "streaming", text: "NETFLIX.COM", expected: model.CategoryLeisure},
		{name: "ride", text: "UBER *TRIP", expected: model.CategoryTransport},
		{name: "pharmacy", text: "Pharmacie du Centre", expected: model.CategoryHealth},
		{name: "tuition", text: "UNIVERSITE DE DOUALA SCOLARITE", expected: model.CategoryEducation},
		{name: "rent beats market", text: "LOYER MARKET STREET", expected: model.CategoryHousing},
		{name: "no match", text: "AMAZON.COM*RT4Y7HG2", expected: model.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pd.CategoryFor(model.CategoryOther, tt.text))
		})
	}
}

func TestClassifyUsesAllFields(t *testing.T) {
	pd := NewDefaultDetector()

	m := pd.Classify("CARD PAYMENT", "monthly spotify family")
	require.NotNil(t, m)
	assert.Equal(t, "Streaming", m.PatternName)
	assert.Nil(t, pd.Classify("", ""))
}

func TestPriorityOrder(t *testing.T) {
	pd, err := NewPatternDetector([]Pattern{
		{Name: "low", Category: model.CategoryOther, Regex: `SHOP`, Priority: 1},
		{Name: "high", Category: model.CategoryFood, Regex: `SHOP`, Priority: 10},
	})
	require.NoError(t, err)

	m := pd.Classify("corner shop")
	require.NotNil(t, m)
	assert.Equal(t, "high", m.PatternName)
}

func TestInvalidPatterns(t *testing.T) {
	_, err := NewPatternDetector([]Pattern{{Name: "bad", Category: model.CategoryFood, Regex: `([`}})
	assert.Error(t, err)

	_, err = NewPatternDetector([]Pattern{{Name: "nocat", Category: "Snacks", Regex: `X`}})
	assert.Error(t, err)
}

func TestUpdatePatterns(t *testing.T) {
	pd := NewDefaultDetector()
	require.NoError(t, pd.UpdatePatterns([]Pattern{
		{Name: "only", Category: model.CategoryEducation, Regex: `\bNOTEBOOK\b`},
	}))
	assert.Equal(t, 1, pd.GetPatternCount())
	assert.Equal(t, model.CategoryEducation, pd.CategoryFor(model.CategoryOther, "notebook"))
	assert.Equal(t, model.CategoryOther, pd.CategoryFor(model.CategoryOther, "NETFLIX"))

	assert.Error(t, pd.UpdatePatterns([]Pattern{{Name: "bad", Category: model.CategoryFood, Regex: `(`}}))
	assert.Equal(t, 1, pd.GetPatternCount(), "failed update keeps old patterns")
}
