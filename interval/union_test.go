package interval

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestNewUnion(t *testing.T) {
	tests := []struct {
		ranges []Range
		want   []PosType
	}{
		{nil, nil},
		{[]Range{{5, 15}, {7, 17}, {20, 25}}, []PosType{5, 17, 20, 25}},
		{[]Range{{20, 25}, {7, 17}, {5, 15}}, []PosType{5, 17, 20, 25}},
		{[]Range{{0, 5}, {5, 9}}, []PosType{0, 9}},
		{[]Range{{0, 5}, {3, 3}, {2, 4}}, []PosType{0, 5}},
		{[]Range{{4, 4}}, nil},
	}
	for _, tt := range tests {
		u := NewUnion(tt.ranges)
		expect.EQ(t, u.endpoints, tt.want, "%v", tt.ranges)
	}
	expect.EQ(t, NewUnion([]Range{{5, 15}, {7, 17}, {20, 25}}).Covered(), 17)
	expect.EQ(t, Union{}.Covered(), 0)
}

func TestUnionScanner(t *testing.T) {
	u := NewUnion([]Range{{5, 15}, {7, 17}, {20, 25}})
	us := u.NewScanner()
	var r Range
	var got []Range
	for us.Scan(&r, 22) {
		got = append(got, r)
	}
	expect.EQ(t, got, []Range{{5, 17}, {20, 22}})
	got = got[:0]
	for us.Scan(&r, 30) {
		got = append(got, r)
	}
	expect.EQ(t, got, []Range{{22, 25}})
	expect.False(t, us.Scan(&r, PosTypeMax))

	us = u.NewScanner()
	got = got[:0]
	for us.Scan(&r, PosTypeMax) {
		got = append(got, r)
	}
	expect.EQ(t, got, []Range{{5, 17}, {20, 25}})

	empty := Union{}.NewScanner()
	expect.False(t, empty.Scan(&r, PosTypeMax))
}
