package provider

import (
	"errors"
	"reflect"
	"testing"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/streambinder/yturl/util"
	"github.com/stretchr/testify/assert"
)

func BenchmarkProvider(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TestSearch(&testing.T{})
	}
}

func TestSearch(t *testing.T) {
	// monkey patching
	defer gomonkey.ApplyPrivateMethod(reflect.TypeOf(youTube{}), "search", func() ([]*Result, error) {
		return []*Result{
			{ID: "id1", Title: "first title"},
			{ID: "id2", Title: "second title"},
		}, nil
	}).Reset()

	// testing
	result, err := Search("some query")
	assert.Nil(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=id1", result.URL())
}

func TestSearchIdempotence(t *testing.T) {
	// monkey patching
	defer gomonkey.ApplyPrivateMethod(reflect.TypeOf(youTube{}), "search", func() ([]*Result, error) {
		return []*Result{{ID: "id1"}}, nil
	}).Reset()

	// testing
	first, err := Search("some query")
	assert.Nil(t, err)
	second, err := Search("some query")
	assert.Nil(t, err)
	assert.Equal(t, first.URL(), second.URL())
}

func TestSearchNoResults(t *testing.T) {
	// monkey patching
	defer gomonkey.ApplyPrivateMethod(reflect.TypeOf(youTube{}), "search", func() ([]*Result, error) {
		return []*Result{}, nil
	}).Reset()

	// testing
	assert.ErrorIs(t, util.ErrOnly(Search("some query")), ErrNoResults)
}

func TestSearchFailure(t *testing.T) {
	// monkey patching
	defer gomonkey.ApplyPrivateMethod(reflect.TypeOf(youTube{}), "search", func() ([]*Result, error) {
		return nil, errors.New("ko")
	}).Reset()

	// testing
	assert.Error(t, util.ErrOnly(Search("some query")), "ko")
}
