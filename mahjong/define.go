package mahjong

// 手牌风格类型
type EHandStyle int

const (
	HandNormal          EHandStyle = iota // 四面子一雀头
	HandSevenPairs                        // 七对
	HandThirteenOrphans                   // 十三幺
)

const (
	TileKinds           = 34
	TileCountPerKind    = 4
	TileCountInitNormal = 13
	TileCountHu         = 14
)

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万 m
	ColorDot                         // 筒 p
	ColorBamboo                      // 条 s
	ColorHonor                       // 字 z
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 7}
var SeqBeginByColor = [ColorEnd]int{0, 9, 18, 27}

// 花色标记，与 EColor 一一对应
const colorMarkers = "mpsz"

// 面子类型
type EGroupType int

const (
	GroupSequence EGroupType = iota // 顺子
	GroupTriplet                    // 刻子
	GroupPair                       // 雀头
	GroupKon                        // 明杠
	GroupAnKon                      // 暗杠
)

func (t EGroupType) String() string {
	switch t {
	case GroupSequence:
		return "sequence"
	case GroupTriplet:
		return "triplet"
	case GroupPair:
		return "pair"
	case GroupKon:
		return "kong"
	case GroupAnKon:
		return "concealed kong"
	default:
		return "unknown"
	}
}
