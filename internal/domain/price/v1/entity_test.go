package v1

import (
	"testing"

	"github.com/muhammadchandra19/mock-market-data/pkg/interval"
	"github.com/stretchr/testify/assert"
)

func TestNewCollectionSpec(t *testing.T) {
	testCases := []struct {
		name string
		spec CollectionSpec
		want string
	}{
		{
			name: "minutes by default",
			spec: NewCollectionSpec("mock_btc_minutes"),
			want: "minutes",
		},
		{
			name: "hourly series",
			spec: NewCollectionSpec("mock_btc_hours").ForInterval(interval.Interval1h),
			want: "hours",
		},
		{
			name: "per second series",
			spec: NewCollectionSpec("mock_btc_seconds").ForInterval(interval.Interval1s),
			want: "seconds",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.spec.Granularity)
			assert.Equal(t, FieldTimestamp, tc.spec.TimeField)
			assert.Equal(t, FieldSymbol, tc.spec.MetaField)
		})
	}
}
