package core

import (
	"errors"
	"fmt"
)

// DomainError 是领域层的统一错误类型。
//
// 打分链路上的错误都是确定性的编程错误（配置不匹配、度量违反契约、数值越界），
// 不做重试，直接同步返回给调用方。
//
// 错误分类：
//   - INVALID_CONFIG：组合器构造阶段的配置错误（度量与参数个数不一致等）
//   - CONTRACT_VIOLATION：度量/模型返回的长度与 Pool 大小不一致
//   - NUMERIC_DOMAIN：负底数配非整数指数
type DomainError struct {
	Code    string // 错误代码（如 "INVALID_CONFIG"）
	Message string // 错误消息
	Module  string // 模块名称（如 "utility", "query"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// IsDomainError 检查错误链中是否存在 DomainError
func IsDomainError(err error) bool {
	return GetDomainError(err) != nil
}

// GetDomainError 获取错误链中的 DomainError，如果不存在则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound          = "NOT_FOUND"          // 资源不存在
	ErrorCodeInvalidInput      = "INVALID_INPUT"      // 输入无效
	ErrorCodeInvalidConfig     = "INVALID_CONFIG"     // 配置错误，构造时即失败
	ErrorCodeContractViolation = "CONTRACT_VIOLATION" // 度量输出长度与 Pool 不一致
	ErrorCodeNumericDomain     = "NUMERIC_DOMAIN"     // 负底数的非整数次幂
)

// 模块名称常量
const (
	ModuleUtility = "utility"
	ModuleQuery   = "query"
	ModuleModel   = "model"
	ModuleConfig  = "config"
)

// ConfigurationError 创建 INVALID_CONFIG 错误。
func ConfigurationError(module, format string, args ...any) *DomainError {
	return NewDomainError(module, ErrorCodeInvalidConfig, module+": "+fmt.Sprintf(format, args...))
}

// ContractViolationError 创建 CONTRACT_VIOLATION 错误。
func ContractViolationError(module, format string, args ...any) *DomainError {
	return NewDomainError(module, ErrorCodeContractViolation, module+": "+fmt.Sprintf(format, args...))
}

// NumericDomainError 创建 NUMERIC_DOMAIN 错误。
func NumericDomainError(module, format string, args ...any) *DomainError {
	return NewDomainError(module, ErrorCodeNumericDomain, module+": "+fmt.Sprintf(format, args...))
}

func hasCode(err error, code string) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == code
	}
	return false
}

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool { return hasCode(err, ErrorCodeNotFound) }

// IsInvalidInput 检查错误是否为 INVALID_INPUT
func IsInvalidInput(err error) bool { return hasCode(err, ErrorCodeInvalidInput) }

// IsConfigurationError 检查错误是否为 INVALID_CONFIG
func IsConfigurationError(err error) bool { return hasCode(err, ErrorCodeInvalidConfig) }

// IsContractViolation 检查错误是否为 CONTRACT_VIOLATION
func IsContractViolation(err error) bool { return hasCode(err, ErrorCodeContractViolation) }

// IsNumericDomain 检查错误是否为 NUMERIC_DOMAIN
func IsNumericDomain(err error) bool { return hasCode(err, ErrorCodeNumericDomain) }
