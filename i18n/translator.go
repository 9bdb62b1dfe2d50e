package i18n

import "strings"

// Translator retrieves localized messages for issue codes. data provides
// optional detail values to embed in the message (for example, "expected"
// or "min").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	base, detail := lookup(t.lang, code, data)
	if detail == "" {
		return base
	}
	return base + ": " + detail
}

func lookup(lang, code string, data map[string]string) (string, string) {
	switch lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です", expectedReceived(data)
		case "too_small":
			return "小さすぎます", bound(data, "min")
		case "too_big":
			return "大きすぎます", bound(data, "max")
		case "invalid_string":
			return "文字列の形式が不正です", data["format"]
		case "invalid_enum":
			return "許可されていない値です", data["options"]
		case "invalid_literal":
			return "値が一致しません", data["expected"]
		case "invalid_union":
			return "どの候補にも一致しません", ""
		case "unrecognized_keys":
			return "未知のキーです", data["keys"]
		case "invalid_date":
			return "日付が不正です", ""
		case "custom":
			return "値が不正です", ""
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type", expectedReceived(data)
		case "too_small":
			return "too small", bound(data, "min")
		case "too_big":
			return "too big", bound(data, "max")
		case "invalid_string":
			return "invalid string", data["format"]
		case "invalid_enum":
			return "invalid enum value", prefixed("expected one of ", data["options"])
		case "invalid_literal":
			return "invalid literal", prefixed("expected ", data["expected"])
		case "invalid_union":
			return "no union candidate matched the input", ""
		case "unrecognized_keys":
			return "unrecognized keys", data["keys"]
		case "invalid_date":
			return "invalid date", ""
		case "custom":
			return "invalid value", ""
		}
	}
	return code, ""
}

func expectedReceived(data map[string]string) string {
	parts := make([]string, 0, 2)
	if v := data["expected"]; v != "" {
		parts = append(parts, "expected "+v)
	}
	if v := data["received"]; v != "" {
		parts = append(parts, "received "+v)
	}
	return strings.Join(parts, ", ")
}

func bound(data map[string]string, key string) string {
	if v := data[key]; v != "" {
		return key + " " + v
	}
	return ""
}

func prefixed(prefix, v string) string {
	if v == "" {
		return ""
	}
	return prefix + v
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
