package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateToolID(t *testing.T) {
	assert.NoError(t, ValidateToolID("linalg.solve", "tool_id", true))
	assert.NoError(t, ValidateToolID("linalg.lu-v2", "tool_id", true))
	assert.Error(t, ValidateToolID("", "tool_id", true))
	assert.Error(t, ValidateToolID("has space", "tool_id", true))
	assert.Error(t, ValidateToolID("semi;colon", "tool_id", true))
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory("linalg", false))
	assert.NoError(t, ValidateCategory("", false))
	assert.Error(t, ValidateCategory("", true))
	assert.Error(t, ValidateCategory("Linalg", false))
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, ValidateQuery("invert a matrix"))
	assert.Error(t, ValidateQuery(""))
	assert.Error(t, ValidateQuery("bad\x00query"))
}
