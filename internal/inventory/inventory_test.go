package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockQuerier struct {
	mock.Mock
}

func (m *mockQuerier) Query(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

func TestEffectivePrefix(t *testing.T) {
	assert.Equal(t, "mypkg-abc-func", EffectivePrefix("abc-func", "mypkg"))
	assert.Equal(t, "abc-func", EffectivePrefix("abc-func", ""))
}

func TestLookup_TrimsResult(t *testing.T) {
	q := new(mockQuerier)
	q.On("Query", mock.Anything, "mypkg-abc-func").Return("mypkg-abc-func\n", nil)

	name, err := New(q).Lookup(context.Background(), "abc-func", "mypkg")
	require.NoError(t, err)
	assert.Equal(t, "mypkg-abc-func", name)
	q.AssertExpectations(t)
}

func TestLookup_NotFound(t *testing.T) {
	for _, out := range []string{"", "None", "None\n", "  \n"} {
		t.Run(out, func(t *testing.T) {
			q := new(mockQuerier)
			q.On("Query", mock.Anything, "mypkg-abc-func").Return(out, nil)

			_, err := New(q).Lookup(context.Background(), "abc-func", "mypkg")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Contains(t, err.Error(), "mypkg-abc-func")
		})
	}
}

func TestLookup_QueryFailure(t *testing.T) {
	cause := errors.New("exec: \"aws\": executable file not found in $PATH")
	q := new(mockQuerier)
	q.On("Query", mock.Anything, "abc-func").Return("", cause)

	_, err := New(q).Lookup(context.Background(), "abc-func", "")
	require.Error(t, err)

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "abc-func", lookupErr.Prefix)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), cause.Error())
	assert.NotErrorIs(t, err, ErrNotFound)
}
