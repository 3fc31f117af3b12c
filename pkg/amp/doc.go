// Package amp 实现了 AMP 风格的自描述二进制线格式编解码。
//
// 线格式（bit 级约定）：
//   - Field：2 字节大端长度前缀 + 等长的 UTF-8 文本，单字段上限 65535 字节；
//   - 标量：以十进制/文本形式编码（布尔为 "True"/"False"，数字为十进制文本，
//     字符与字符串为 UTF-8 原文），不使用原生二进制表示；
//   - 结构体：按字段声明顺序平铺为 key/value 字段对，key 恒为字符串，
//     没有独立的长度包装与字段计数；
//   - 序列：单个 Field 形式的帧，长度前缀为所有子元素编码后的总字节数
//     （不是元素个数），子元素递归编码后连续排布；
//   - 终止符：保留的两字节 0x00 0x00，出现在每个顶层文档末尾，
//     同时作为结构体 key 扫描的停止条件。
//
// 编码端通过标记栈实现序列长度的回填：序列正文写完后才知道字节跨度，
// 此时在记录的位置插入 2 字节长度前缀。解码端以单向游标 + 一次字段前瞻
// （peek 不消费）流式还原，不构造中间解析树。
//
// 使用方式分两层：
//   - Marshal/Unmarshal 基于反射驱动，直接处理应用结构体；
//   - Encoder/Decoder 暴露逐字段的推/拉接口（FieldEmitter/FieldSource），
//     供自定义遍历驱动使用，编解码器本身不持有任何 schema。
//
// 已知限制（线格式层面的保留决定，详见仓库 DESIGN.md）：
//   - 空字符串与终止符字节完全相同，因此空字符串不允许编码；
//   - 嵌套结构体没有私有终止符，只允许作为最外层值或最后一个字段出现；
//   - 字节串、空值（nil）、map 等类别不在支持集合内，编码时显式报错。
package amp
