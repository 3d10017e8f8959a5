package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inkwell/models"
)

func TestSortCommentsNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	comments := []models.Comment{
		{ID: "first", CreatedAt: base.Add(-30 * time.Minute)},
		{ID: "latest", CreatedAt: base},
	}

	sortCommentsNewestFirst(comments)

	assert.Equal(t, "latest", comments[0].ID)
	assert.Equal(t, "first", comments[1].ID)
}

func TestSortCommentsNewestFirst_UnresolvedTimestampOnTop(t *testing.T) {
	comments := []models.Comment{
		{ID: "dated", CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{ID: "fresh"}, // just written, server timestamp pending
	}

	sortCommentsNewestFirst(comments)

	assert.Equal(t, "fresh", comments[0].ID)
}
