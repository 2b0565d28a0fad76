package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	assert.Equal(t, "trivia:catalog:categories:all",
		GenerateCacheKey("catalog", "categories", "all"))

	assert.Equal(t, "trivia:catalog:questions:7:page1",
		GenerateCacheKey("catalog", "questions", "7", "page1"))
}
