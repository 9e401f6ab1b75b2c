package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandCategory_String(t *testing.T) {
	tests := []struct {
		category CommandCategory
		expected string
	}{
		{CategoryUncategorized, "other"},
		{CategoryMessage, "message boxes"},
		{CategoryInput, "input boxes"},
		{CategoryFile, "file dialogs"},
		{CategoryText, "text"},
		{CategoryProgress, "progress"},
		{CategoryList, "lists and selections"},
		{CategoryShell, "shell"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.category.String())
		})
	}
}

func TestCommandCategory_Unknown(t *testing.T) {
	require.Equal(t, "other", CommandCategory(99).String())
}

func TestCategoryOrder(t *testing.T) {
	order := CategoryOrder()

	require.Equal(t, categoryOrder, order)
	require.Equal(t, CategoryMessage, order[0])
	require.Equal(t, CategoryUncategorized, order[len(order)-1])
	require.Contains(t, order, CategoryFile)
	require.Contains(t, order, CategoryList)
	require.Contains(t, order, CategoryShell)
}
