package catalog

import "github.com/KirkDiggler/msh-chargen/internal/engine/table"

// Range is a min/max slot count
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SlotRow is one row of the shared slot table
type SlotRow struct {
	Powers   Range
	Talents  Range
	Contacts Range
}

// SlotTable is rolled once per phase; each phase reads its own column
var SlotTable = table.Must("slots", table.D100,
	table.Entry[SlotRow]{Below: 13, Outcome: SlotRow{Range{1, 3}, Range{0, 3}, Range{0, 2}}},
	table.Entry[SlotRow]{Below: 27, Outcome: SlotRow{Range{2, 4}, Range{1, 4}, Range{0, 4}}},
	table.Entry[SlotRow]{Below: 42, Outcome: SlotRow{Range{3, 5}, Range{1, 6}, Range{1, 4}}},
	table.Entry[SlotRow]{Below: 56, Outcome: SlotRow{Range{4, 6}, Range{2, 4}, Range{2, 4}}},
	table.Entry[SlotRow]{Below: 67, Outcome: SlotRow{Range{5, 7}, Range{2, 6}, Range{2, 6}}},
	table.Entry[SlotRow]{Below: 76, Outcome: SlotRow{Range{6, 8}, Range{2, 8}, Range{3, 3}}},
	table.Entry[SlotRow]{Below: 84, Outcome: SlotRow{Range{7, 9}, Range{3, 4}, Range{3, 4}}},
	table.Entry[SlotRow]{Below: 90, Outcome: SlotRow{Range{8, 10}, Range{3, 6}, Range{3, 6}}},
	table.Entry[SlotRow]{Below: 95, Outcome: SlotRow{Range{9, 12}, Range{4, 4}, Range{4, 4}}},
	table.Entry[SlotRow]{Below: 98, Outcome: SlotRow{Range{10, 12}, Range{4, 8}, Range{4, 5}}},
	table.Entry[SlotRow]{Below: 100, Outcome: SlotRow{Range{12, 14}, Range{5, 6}, Range{5, 5}}},
	table.Entry[SlotRow]{Below: 101, Outcome: SlotRow{Range{14, 18}, Range{6, 8}, Range{6, 6}}},
)

// Resource costs in Resources ranks
const (
	PowerCost   = 2
	TalentCost  = 1
	ContactCost = 1
)
