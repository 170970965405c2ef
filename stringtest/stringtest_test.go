package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/purpleclay/yam/stringtest"
)

func TestJoinLF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\nc", stringtest.JoinLF("a", "b", "c"))
	assert.Equal(t, "single", stringtest.JoinLF("single"))
	assert.Empty(t, stringtest.JoinLF())
}

func TestDoc(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "| Key |\n| --- |\n", stringtest.Doc("| Key |", "| --- |"))
}
