package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPager(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		nexts     int
		prevs     int
		wantPages int
		wantFrom  int
		wantTo    int
	}{
		{name: "empty", rows: 0, wantPages: 1, wantFrom: 0, wantTo: 0},
		{name: "single page", rows: 7, wantPages: 1, wantFrom: 0, wantTo: 7},
		{name: "exact pages", rows: 20, nexts: 1, wantPages: 2, wantFrom: 10, wantTo: 20},
		{name: "last partial page", rows: 23, nexts: 2, wantPages: 3, wantFrom: 20, wantTo: 23},
		{name: "next clamps", rows: 23, nexts: 9, wantPages: 3, wantFrom: 20, wantTo: 23},
		{name: "prev clamps", rows: 23, nexts: 1, prevs: 5, wantPages: 3, wantFrom: 0, wantTo: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pager{rows: tt.rows}
			for range tt.nexts {
				p = p.next()
			}
			for range tt.prevs {
				p = p.prev()
			}

			from, to := p.bounds()
			assert.Equal(t, tt.wantPages, p.pages())
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "Linha 100", fitText("Linha 100", 30))
	assert.Equal(t, "Avenida...", fitText("Avenida Paulista", 10))
	assert.Equal(t, "Ôni", fitText("Ônibus", 3))
}
