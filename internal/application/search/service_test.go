package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/search"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

type spySource struct {
	calls   int
	sawLoad bool
	svc     *search.Service
	err     error
}

func (s *spySource) Search(ctx context.Context, q string) ([]entity.SearchResult, error) {
	s.calls++
	if s.svc != nil {
		s.sawLoad = s.svc.State().Loading
	}
	if s.err != nil {
		return nil, s.err
	}
	return search.NewSampleSource(nil).Search(ctx, q)
}

func TestSampleSource_SinDistinguirMayusculas(t *testing.T) {
	src := search.NewSampleSource(nil)
	ctx := context.Background()

	got, err := src.Search(ctx, "LECHUGA")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Lechuga Romana", got[0].Name)

	got, _ = src.Search(ctx, "azotea")
	assert.Len(t, got, 2, "coincide en nombre y en descripción")

	got, _ = src.Search(ctx, "maría")
	assert.Len(t, got, 1)

	got, _ = src.Search(ctx, "zzz")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPerformGlobalSearch(t *testing.T) {
	spy := &spySource{}
	svc := search.NewService(spy, zerolog.Nop())
	spy.svc = svc

	svc.PerformGlobalSearch(context.Background(), "tomate")
	st := svc.State()
	assert.True(t, spy.sawLoad, "loading se activa durante la búsqueda")
	assert.False(t, st.Loading)
	assert.Equal(t, "tomate", st.Query)
	require.Len(t, st.Results, 1)
}

func TestPerformGlobalSearch_VaciaLimpiaSinLoading(t *testing.T) {
	spy := &spySource{}
	svc := search.NewService(spy, zerolog.Nop())
	svc.PerformGlobalSearch(context.Background(), "albahaca")
	require.NotEmpty(t, svc.State().Results)

	svc.PerformGlobalSearch(context.Background(), "   ")
	st := svc.State()
	assert.Empty(t, st.Results)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Query)
	assert.Equal(t, 1, spy.calls, "la consulta vacía no llega a la fuente")
}

func TestPerformGlobalSearch_ErrorDejaResultadosVacios(t *testing.T) {
	svc := search.NewService(&spySource{err: errors.New("caído")}, zerolog.Nop())
	svc.PerformGlobalSearch(context.Background(), "tomate")
	st := svc.State()
	assert.Empty(t, st.Results)
	assert.False(t, st.Loading)
}
