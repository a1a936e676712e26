package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSection(t *testing.T) {
	content := `-- +migrate Up
CREATE TABLE users (id TEXT PRIMARY KEY);
CREATE TABLE orders (id TEXT PRIMARY KEY);

-- +migrate Down
DROP TABLE orders;
DROP TABLE users;
`

	t.Run("Up", func(t *testing.T) {
		up := extractSection(content, "Up")
		assert.Contains(t, up, "CREATE TABLE users")
		assert.Contains(t, up, "CREATE TABLE orders")
		assert.NotContains(t, up, "DROP TABLE")
	})

	t.Run("Down", func(t *testing.T) {
		down := extractSection(content, "Down")
		assert.Contains(t, down, "DROP TABLE orders")
		assert.NotContains(t, down, "CREATE TABLE")
	})

	t.Run("MissingSection", func(t *testing.T) {
		assert.Empty(t, strings.TrimSpace(extractSection(content, "Sideways")))
	})
}
