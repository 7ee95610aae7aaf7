package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_Demo(t *testing.T) {
	out, err := execute(t, "", "--as-of", "2025-01-15", "--letter", "е")
	require.NoError(t, err)

	assert.Contains(t, out, "Повний вік (станом на 15.01.2025): 39 років")
	assert.Contains(t, out, "Шевченко: 2 разів")
}

func TestRoot_DemoReadsStdin(t *testing.T) {
	out, err := execute(t, "о\n", "--as-of", "2025-04-01")
	require.NoError(t, err)

	assert.Contains(t, out, "Повний вік (станом на 01.04.2025): 40 років")
	assert.Contains(t, out, "Коваленко: 2 разів")
}

func TestRoot_ErrorsExitZeroUnlessStrict(t *testing.T) {
	out, err := execute(t, "", "--as-of", "2025-04-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Помилка:")

	_, err = execute(t, "", "--as-of", "2025-04-01", "--strict")
	assert.Error(t, err)
}

func TestRoot_BadFlags(t *testing.T) {
	_, err := execute(t, "", "--letter", "ab")
	assert.Error(t, err)

	_, err = execute(t, "", "--as-of", "15.01.2025", "--letter", "a")
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	out, err := execute(t, "", "find", "--name", "ІВАН")
	require.NoError(t, err)
	assert.Contains(t, out, "Знайдено записів: 1")
	assert.Contains(t, out, "[людина] Петренко Іван Олександрович")

	out, err = execute(t, "", "find", "--specialty", "програмна інженерія")
	require.NoError(t, err)
	assert.Contains(t, out, "[студент] Мельник Анна Петрівна, Програмна інженерія")

	out, err = execute(t, "", "find", "--surname", "Іваненко")
	require.NoError(t, err)
	assert.Contains(t, out, "Знайдено записів: 0")
}

func TestFind_RequiresOneCriterion(t *testing.T) {
	_, err := execute(t, "", "find")
	assert.Error(t, err)
}
