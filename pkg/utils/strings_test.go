package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanList(t *testing.T) {
	assert.Nil(t, CleanList(nil))
	assert.Nil(t, CleanList([]string{"", "  "}))
	assert.Equal(t, []string{"a", "b"}, CleanList([]string{" a ", "", "b"}))
}
