package layout

// Config sizes the signage grid for a given number of events
type Config struct {
	Columns   int    `json:"columns"`
	Rows      []int  `json:"rows"` // cards per row, top to bottom
	CardWidth string `json:"card_width"`
	Padding   string `json:"padding"`
	IconSize  string `json:"icon_size"`
	TitleSize string `json:"title_size"`
	MetaSize  string `json:"meta_size"`
	BadgeSize string `json:"badge_size"`
	TimeSize  string `json:"time_size"`
	Gap       string `json:"gap"`
}

// maxBucket is the count from which every larger count shares one layout
const maxBucket = 8

// buckets is indexed by event count. Each entry is tuned on its own.
var buckets = map[int]Config{
	1: {Columns: 1, Rows: []int{1}, CardWidth: "1400px", Padding: "72px 80px", IconSize: "140px", TitleSize: "88px", MetaSize: "44px", BadgeSize: "36px", TimeSize: "56px", Gap: "48px"},
	2: {Columns: 2, Rows: []int{2}, CardWidth: "1050px", Padding: "60px 64px", IconSize: "110px", TitleSize: "68px", MetaSize: "36px", BadgeSize: "30px", TimeSize: "46px", Gap: "48px"},
	3: {Columns: 3, Rows: []int{3}, CardWidth: "740px", Padding: "52px 52px", IconSize: "92px", TitleSize: "56px", MetaSize: "30px", BadgeSize: "26px", TimeSize: "38px", Gap: "40px"},
	4: {Columns: 2, Rows: []int{2, 2}, CardWidth: "1050px", Padding: "40px 52px", IconSize: "80px", TitleSize: "52px", MetaSize: "28px", BadgeSize: "24px", TimeSize: "36px", Gap: "40px"},
	5: {Columns: 3, Rows: []int{3, 2}, CardWidth: "740px", Padding: "36px 44px", IconSize: "72px", TitleSize: "46px", MetaSize: "26px", BadgeSize: "22px", TimeSize: "32px", Gap: "36px"},
	6: {Columns: 3, Rows: []int{3, 3}, CardWidth: "740px", Padding: "36px 44px", IconSize: "72px", TitleSize: "46px", MetaSize: "26px", BadgeSize: "22px", TimeSize: "32px", Gap: "36px"},
	7: {Columns: 4, Rows: []int{4, 3}, CardWidth: "560px", Padding: "32px 36px", IconSize: "60px", TitleSize: "38px", MetaSize: "22px", BadgeSize: "20px", TimeSize: "28px", Gap: "32px"},
	8: {Columns: 4, CardWidth: "560px", Padding: "24px 32px", IconSize: "52px", TitleSize: "32px", MetaSize: "20px", BadgeSize: "18px", TimeSize: "24px", Gap: "28px"},
}

// ForCount returns the signage layout for n events. Counts below one use
// the single-event layout; counts of eight or more share one layout whose
// rows are filled four at a time.
func ForCount(n int) Config {
	key := n
	if key < 1 {
		key = 1
	}
	if key > maxBucket {
		key = maxBucket
	}

	cfg := buckets[key]
	if key == maxBucket {
		cfg.Rows = uniformRows(n, cfg.Columns)
	} else {
		cfg.Rows = append([]int(nil), cfg.Rows...)
	}
	return cfg
}

func uniformRows(n, columns int) []int {
	rows := make([]int, 0, n/columns+1)
	for n > 0 {
		size := columns
		if n < columns {
			size = n
		}
		rows = append(rows, size)
		n -= size
	}
	return rows
}

// Chunk splits items into consecutive rows of the given sizes. Items beyond
// the sum of sizes are dropped.
func Chunk[T any](items []T, sizes []int) [][]T {
	out := make([][]T, 0, len(sizes))
	start := 0
	for _, size := range sizes {
		if start >= len(items) {
			break
		}
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
		start = end
	}
	return out
}

// Pairs splits items into rows of two, the last row possibly holding one
func Pairs[T any](items []T) [][]T {
	return Chunk(items, uniformRows(len(items), 2))
}
