package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifyingScholarships(t *testing.T) {
	uni := University{
		Name: "Lovely Professional University",
		Scholarships: []Scholarship{
			{Name: "Merit Scholarship", MinGPA: 3.0, Percentage: 50},
			{Name: "Dean's Award", MinGPA: 3.8, Percentage: 100},
			{Name: "Need Based", MinGPA: 2.5, Amount: 1000},
		},
	}

	got := uni.QualifyingScholarships(3.5)
	assert.Len(t, got, 2)
	assert.Equal(t, "Merit Scholarship", got[0].Name)
	assert.Equal(t, "Need Based", got[1].Name)

	assert.Nil(t, uni.QualifyingScholarships(2.0))

	// exact boundary qualifies
	got = uni.QualifyingScholarships(3.8)
	assert.Len(t, got, 3)
}
