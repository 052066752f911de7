package prefix

// ladder is the fixed ordered set of selectable powers of ten. Steps of
// three everywhere except -2..2, which the centi/deci/deca/hecto prefixes
// and the empty prefix fill one decade at a time.
var ladder = []int{
	-30, -27, -24, -21, -18, -15, -12, -9, -6, -3,
	-2, -1, 0, 1, 2,
	3, 6, 9, 12, 15, 18, 21, 24, 27, 30,
}

// names maps each ladder value to its SI prefix name. The zero entry is
// the empty prefix.
var names = map[int]string{
	-30: "quecto",
	-27: "ronto",
	-24: "yocto",
	-21: "zepto",
	-18: "atto",
	-15: "femto",
	-12: "pico",
	-9:  "nano",
	-6:  "micro",
	-3:  "milli",
	-2:  "centi",
	-1:  "deci",
	0:   "",
	1:   "deca",
	2:   "hecto",
	3:   "kilo",
	6:   "mega",
	9:   "giga",
	12:  "tera",
	15:  "peta",
	18:  "exa",
	21:  "zetta",
	24:  "yotta",
	27:  "ronna",
	30:  "quetta",
}

// Ladder returns a copy of the selectable powers of ten in ascending order.
func Ladder() []int {
	out := make([]int, len(ladder))
	copy(out, ladder)
	return out
}

// Name returns the SI prefix name for a ladder value. ok is false for
// powers of ten outside the ladder.
func Name(power int) (name string, ok bool) {
	name, ok = names[power]
	return name, ok
}
