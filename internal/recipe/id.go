package recipe

import (
	"fmt"
	"sync/atomic"
	"time"
)

var mealTypeCode = map[MealType]string{
	Breakfast: "1",
	Lunch:     "2",
	Dinner:    "3",
	Dessert:   "4",
	Snack:     "5",
}

// idTail is seeded from the wall clock so ids from separate runs rarely
// overlap, then advances atomically so ids within one process never do.
var idTail atomic.Uint64

func init() {
	idTail.Store(uint64(time.Now().UnixMilli()))
}

// GenerateID returns a 6-digit recipe id. The first digit encodes the meal
// type (1..5), the remaining 5 digits come from a process-wide counter
// reduced to the 5-digit space.
func GenerateID(mealType MealType) string {
	head, ok := mealTypeCode[mealType]
	if !ok {
		head = "0"
	}
	tail := idTail.Add(1) % 100000
	return head + fmt.Sprintf("%05d", tail)
}
