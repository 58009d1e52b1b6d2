package safe

import "math/bits"

// Add64 執行溢位檢查的 uint64 加法
//
// 參數:
//
//	a: 被加數
//	b: 加數
//
// 回傳:
//
//	uint64: 相加結果 (溢位時為 0)
//	bool: 是否成功 (false 表示溢位)
func Add64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, false
	}
	return sum, true
}

// Sub64 執行下溢檢查的 uint64 減法
//
// 參數:
//
//	a: 被減數
//	b: 減數
//
// 回傳:
//
//	uint64: 相減結果 (下溢時為 0)
//	bool: 是否成功 (false 表示 b 大於 a)
func Sub64(a, b uint64) (uint64, bool) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, false
	}
	return diff, true
}
