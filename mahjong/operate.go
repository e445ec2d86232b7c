package mahjong

const (
	OperateNone    int32 = 0               // 无操作
	OperatePass    int32 = 1 << (iota - 1) // 过  1<<0 = 1
	OperateChow                            // 吃  1<<1 = 2
	OperatePon                             // 碰  1<<2 = 4
	OperateKon                             // 杠  1<<3 = 8
	OperateHu                              // 胡  1<<4 = 16
	OperateDiscard                         // 出牌  1<<5 = 32
	OperateDraw                            // 摸牌  1<<6 = 64
)

var OperateNames = map[int32]string{
	OperatePass:    "Pass",
	OperateChow:    "Chow",
	OperatePon:     "Pon",
	OperateKon:     "Kon",
	OperateHu:      "Win",
	OperateDiscard: "Discard",
	OperateDraw:    "Draw",
}

// claimPriority 抢牌优先级序, 排位越前越优先
var claimPriority = []int32{OperateHu, OperateKon, OperatePon, OperateChow}

type Operates struct {
	Value    int32
	IsMustHu bool
	Capped   bool
	HuFan    int32
	KonTiles []Tile // 可杠的牌
	Tips     []int
}

func NewOperates(ops ...int32) *Operates {
	o := &Operates{}
	for _, op := range ops {
		o.AddOperate(op)
	}
	return o
}

func (o *Operates) AddOperate(op int32) {
	o.Value |= op
}

func (o *Operates) AddOperates(ops *Operates) {
	o.Value |= ops.Value
}

func (o *Operates) RemoveOperate(op int32) {
	o.Value &= ^op
}

func (o *Operates) HasOperate(op int32) bool {
	return (o.Value & op) != 0
}

func (o *Operates) Empty() bool {
	return o.Value == 0
}

func GetOperateName(operate int32) string {
	if name, ok := OperateNames[operate]; ok {
		return name
	}
	return ""
}
