package zipkit_test

import (
	"iter"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"

	"go.llib.dev/zipkit"
)

var _ iter.Seq[any] = zipkit.SingleValue[any]("")

func TestSlice_SliceGiven_AllElementsAreYieldedInOrder(t *testing.T) {
	t.Parallel()

	expected := []int{42, 4, 2}

	var actual []int
	for v := range zipkit.Slice(expected) {
		actual = append(actual, v)
	}

	require.Equal(t, expected, actual)
}

func TestSlice_RandomNamesGiven_OrderIsKept(t *testing.T) {
	t.Parallel()

	var names []string
	total := randomdata.Number(3, 9)
	for i := 0; i < total; i++ {
		names = append(names, randomdata.SillyName())
	}

	require.Equal(t, names, zipkit.Collect(zipkit.Slice(names)))
}

func TestSlice_BreakDuringIteration_IterationStops(t *testing.T) {
	t.Parallel()

	var count int
	for range zipkit.Slice([]int{1, 2, 3}) {
		count++
		break
	}

	require.Equal(t, 1, count)
}

func TestSlice_ReusedMultipleTimes_EachIterationStartsOver(t *testing.T) {
	t.Parallel()

	itr := zipkit.Slice([]string{randomdata.City(), randomdata.City()})

	first := zipkit.Collect(itr)
	second := zipkit.Collect(itr)

	require.Equal(t, first, second)
	require.Len(t, first, 2)
}

func TestEmpty_Iterated_NoElementYielded(t *testing.T) {
	t.Parallel()

	for range zipkit.Empty[int]() {
		t.Fatal("no element was expected")
	}
}

func TestEmpty2_Iterated_NoElementYielded(t *testing.T) {
	t.Parallel()

	for range zipkit.Empty2[int, error]() {
		t.Fatal("no element was expected")
	}
}

func TestSingleValue_ValueGiven_ValueYieldedExactlyOnce(t *testing.T) {
	t.Parallel()

	expected := randomdata.MacAddress()

	vs := zipkit.Collect(zipkit.SingleValue(expected))

	require.Equal(t, []string{expected}, vs)
}

func TestChan_BufferedClosedChannelGiven_AllValuesAreYielded(t *testing.T) {
	t.Parallel()

	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	require.Equal(t, []int{1, 2, 3}, zipkit.Collect(zipkit.Chan(ch)))
}

func TestChan_NilChannelGiven_SequenceIsEmpty(t *testing.T) {
	t.Parallel()

	var ch chan int

	require.Empty(t, zipkit.Collect(zipkit.Chan(ch)))
}

func TestChan_BreakDuringIteration_RemainingValuesStayInTheChannel(t *testing.T) {
	t.Parallel()

	ch := make(chan int, 2)
	ch <- 1
	ch <- 2
	close(ch)

	for range zipkit.Chan(ch) {
		break
	}

	require.Equal(t, 2, <-ch)
}

func TestIntRange_BoundsGiven_RangeIsInclusive(t *testing.T) {
	t.Parallel()

	require.Equal(t, []int{3, 4, 5, 6}, zipkit.Collect(zipkit.IntRange(3, 6)))
}

func TestIntRange_EqualBoundsGiven_SingleValueYielded(t *testing.T) {
	t.Parallel()

	n := randomdata.Number(1, 42)

	require.Equal(t, []int{n}, zipkit.Collect(zipkit.IntRange(n, n)))
}

func TestIntRange_RandomBoundsGiven_LengthMatchesTheBounds(t *testing.T) {
	t.Parallel()

	begin := randomdata.Number(1, 10)
	end := begin + randomdata.Number(1, 10)

	vs := zipkit.Collect(zipkit.IntRange(begin, end))

	require.Len(t, vs, end-begin+1)
	require.Equal(t, begin, vs[0])
	require.Equal(t, end, vs[len(vs)-1])
}

func TestCharRange_BoundsGiven_RangeIsInclusive(t *testing.T) {
	t.Parallel()

	require.Equal(t, []rune{'a', 'b', 'c', 'd'}, zipkit.Collect(zipkit.CharRange('a', 'd')))
}

func TestCharRange_UppercaseBoundsGiven_RangeIsInclusive(t *testing.T) {
	t.Parallel()

	require.Equal(t, []rune{'X', 'Y', 'Z'}, zipkit.Collect(zipkit.CharRange('X', 'Z')))
}
