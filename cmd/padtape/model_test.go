// SPDX-License-Identifier: EPL-2.0

package main

import "testing"

func TestCellCenter(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
		x, y     uint32
	}{
		{"bottom left is region 0 at 1x", 0, gridRows - 1, 64, 128},
		{"top left is region 0 at 4x", 0, 0, 64, 896},
		{"bottom right is region 7 at 1x", 7, gridRows - 1, 960, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := cellCenter(tt.col, tt.row)
			if x != tt.x || y != tt.y {
				t.Errorf("expected (%d, %d), got (%d, %d)", tt.x, tt.y, x, y)
			}
		})
	}
}

func TestCellCenter_LandsInOwnBucket(t *testing.T) {
	for col := 0; col < gridCols; col++ {
		for row := 0; row < gridRows; row++ {
			x, y := cellCenter(col, row)
			if int(x>>7) != col {
				t.Errorf("cell (%d,%d): x=%d maps to region %d", col, row, x, x>>7)
			}
			if speed := int(y>>8) + 1; speed != speedForRow(row) {
				t.Errorf("cell (%d,%d): y=%d maps to %dx, label says %dx",
					col, row, y, speed, speedForRow(row))
			}
		}
	}
}
