package amp

// FieldEmitter 抽象了编码端的通用遍历接口。
//
// 遍历驱动（反射或手写 schema）按值的结构依次调用这些方法，
// 编码器只负责把收到的类型化值转成线格式字段，不关心应用类型。
type FieldEmitter interface {
	// EmitBool 写入一个布尔标量字段（"True"/"False"）。
	EmitBool(v bool) error
	// EmitInt 写入一个有符号整数标量字段（十进制文本）。
	EmitInt(v int64) error
	// EmitUint 写入一个无符号整数标量字段（十进制文本）。
	EmitUint(v uint64) error
	// EmitFloat32 写入一个单精度浮点标量字段。
	EmitFloat32(v float32) error
	// EmitFloat64 写入一个双精度浮点标量字段。
	EmitFloat64(v float64) error
	// EmitRune 写入一个单字符标量字段。
	EmitRune(v rune) error
	// EmitString 写入一个字符串标量字段。空字符串与终止符同形，不允许写入。
	EmitString(v string) error
	// EmitKey 写入一个结构体字段名，随后应紧跟对应的值。
	EmitKey(name string) error

	// BeginSequence 在当前位置记录一个回填标记，序列元素随后逐个写入。
	BeginSequence()
	// EndSequence 弹出最近的标记，计算元素总字节数并在标记处回填长度前缀。
	EndSequence() error
}

// FieldSource 抽象了解码端的通用遍历接口。
//
// 遍历驱动按目标形状依次拉取类型化值；解码器仅维护游标与前瞻，
// 每个 key 之后期望什么类型由驱动方声明。
type FieldSource interface {
	// ReadBool 读取一个布尔标量字段。
	ReadBool() (bool, error)
	// ReadInt 读取一个有符号整数标量字段，bitSize 为目标位宽（8/16/32/64）。
	ReadInt(bitSize int) (int64, error)
	// ReadUint 读取一个无符号整数标量字段。
	ReadUint(bitSize int) (uint64, error)
	// ReadFloat 读取一个浮点标量字段，bitSize 为 32 或 64。
	ReadFloat(bitSize int) (float64, error)
	// ReadRune 读取一个单字符标量字段。
	ReadRune() (rune, error)
	// ReadString 读取一个字符串标量字段；结构体的 key 也通过它读取。
	ReadString() (string, error)

	// BeginSequence 读取序列帧的长度前缀，返回声明的元素总字节跨度。
	BeginSequence() (int, error)
	// AtTerminator 前瞻（不消费）当前位置是否为终止符。
	AtTerminator() (bool, error)
}

var (
	_ FieldEmitter = (*Encoder)(nil)
	_ FieldSource  = (*Decoder)(nil)
)
