package subtitle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuildWithTexts(t *testing.T) {
	entries := []Entry{
		entry(1, 1*time.Second, 4*time.Second, "Hello"),
		entry(2, 4500*time.Millisecond, 8*time.Second, "World"),
		entry(3, 8500*time.Millisecond, 12*time.Second, "Test"),
	}

	rebuilt := RebuildWithTexts(entries, []string{"你好", "世界", "测试"})
	require.Len(t, rebuilt, 3)
	assert.Equal(t, "你好", rebuilt[0].Text)
	assert.Equal(t, "世界", rebuilt[1].Text)
	assert.Equal(t, "测试", rebuilt[2].Text)

	// timing preserved
	assert.Equal(t, entries[0].Start, rebuilt[0].Start)
	assert.Equal(t, entries[0].End, rebuilt[0].End)
	assert.Equal(t, entries[0].Index, rebuilt[0].Index)
}

func TestRebuildWithTextsShortfall(t *testing.T) {
	entries := []Entry{
		entry(1, 0, time.Second, "First"),
		entry(2, time.Second, 2*time.Second, "Second"),
		entry(3, 2*time.Second, 3*time.Second, "Third"),
	}

	rebuilt := RebuildWithTexts(entries, []string{"第一"})
	require.Len(t, rebuilt, 3)
	assert.Equal(t, "第一", rebuilt[0].Text)
	assert.Equal(t, "Second", rebuilt[1].Text)
	assert.Equal(t, "Third", rebuilt[2].Text)
}

func TestMergeBilingual(t *testing.T) {
	first := []Entry{
		entry(1, 0, time.Second, "Hello"),
		entry(2, time.Second, 2*time.Second, "World"),
		entry(3, 2*time.Second, 3*time.Second, "Bye"),
	}
	second := []Entry{
		entry(1, 0, time.Second, "你好"),
		entry(2, time.Second, 2*time.Second, "世界"),
		entry(3, 2*time.Second, 3*time.Second, "再见"),
	}

	merged := MergeBilingual(first, second)
	require.Len(t, merged, 3)
	for i := range merged {
		assert.Equal(t, first[i].Text+"\n"+second[i].Text, merged[i].Text)
		assert.Equal(t, first[i].Start, merged[i].Start)
		assert.Equal(t, first[i].End, merged[i].End)
	}
}

func TestMergeBilingualMissingIndex(t *testing.T) {
	first := []Entry{
		entry(1, 0, time.Second, "Hello"),
		entry(2, time.Second, 2*time.Second, "World"),
	}
	second := []Entry{
		entry(2, time.Second, 2*time.Second, "世界"),
	}

	merged := MergeBilingual(first, second)
	require.Len(t, merged, 2)
	assert.Equal(t, "Hello", merged[0].Text)
	assert.Equal(t, "World\n世界", merged[1].Text)
}
