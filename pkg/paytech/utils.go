package paytech

import (
	"fmt"
	"math/rand"
	"time"
)

// ReferencePrefix 支付引用号固定前缀
const ReferencePrefix = "GMP"

// GenerateReference 生成支付引用号
//
// 组成：固定前缀 + 毫秒时间戳 + 小随机数。
// 同一毫秒内的并发请求靠随机后缀区分，唯一性只是概率上的保证，
// 不是密码学或组合意义上的保证，对实际支付量级足够
func GenerateReference() string {
	return fmt.Sprintf("%s-%d-%d", ReferencePrefix, time.Now().UnixMilli(), rand.Intn(10000))
}
