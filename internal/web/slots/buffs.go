package slots

// BuffLayout describes the three contiguous bands of a buff array.
type BuffLayout struct {
	Long       int
	Short      int
	Discipline int
}

var (
	ServerBuffs = BuffLayout{Long: 42, Short: 20, Discipline: 1}
	WebBuffs    = BuffLayout{Long: 25, Short: 12, Discipline: 1}
)

func (l BuffLayout) Total() int {
	return l.Long + l.Short + l.Discipline
}

// Contains reports whether index addresses an entry of this layout.
func (l BuffLayout) Contains(index int) bool {
	return index >= 0 && index < l.Total()
}

func BuffServerToWeb(index int) int {
	return translateBuff(index, ServerBuffs, WebBuffs)
}

func BuffWebToServer(index int) int {
	return translateBuff(index, WebBuffs, ServerBuffs)
}

func translateBuff(index int, src, dst BuffLayout) int {
	switch {
	case index < src.Long:
		return index
	case index < src.Long+src.Short:
		return index - src.Long + dst.Long
	default:
		return index - src.Long - src.Short + dst.Long + dst.Short
	}
}
