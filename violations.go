package htmlward

// ViolationCode names one class of policy violation the engine can
// encounter. Each class has a fixed set of strategies it natively
// understands; an unset or unrecognized strategy escalates to the
// next-broader class via fallbackOf.
type ViolationCode int

const (
	CollectionTooMany ViolationCode = iota
	RecordDuplicate
	RecordValue
	SetValue
	ValueTooLong
	AttributeValue
	Attribute
	Tag
	TagChildren
	TagNesting
)

func (c ViolationCode) String() string {
	switch c {
	case CollectionTooMany:
		return "collectionTooMany"
	case RecordDuplicate:
		return "recordDuplicate"
	case RecordValue:
		return "recordValue"
	case SetValue:
		return "setValue"
	case ValueTooLong:
		return "valueTooLong"
	case AttributeValue:
		return "attributeValue"
	case Attribute:
		return "attribute"
	case Tag:
		return "tag"
	case TagChildren:
		return "tagChildren"
	case TagNesting:
		return "tagNesting"
	default:
		return "unknown"
	}
}

// Strategy is one recovery action a handler may apply.
type Strategy string

const (
	StrategyDropExtra         Strategy = "dropExtra"
	StrategyDropDuplicates    Strategy = "dropDuplicates"
	StrategyKeepDuplicates    Strategy = "keepDuplicates"
	StrategyKeepFirst         Strategy = "keepFirst"
	StrategyKeepLast          Strategy = "keepLast"
	StrategyDropPair          Strategy = "dropPair"
	StrategyDropValue         Strategy = "dropValue"
	StrategyTrimExcess        Strategy = "trimExcess"
	StrategyApplyDefaultValue Strategy = "applyDefaultValue"
	StrategyDiscardAttribute  Strategy = "discardAttribute"
	StrategyDiscardElement    Strategy = "discardElement"
	StrategyUnwrapElement     Strategy = "unwrapElement"
	StrategyThrowError        Strategy = "throwError"
	StrategyDiscardFirsts     Strategy = "discardFirsts"
	StrategyDiscardLasts      Strategy = "discardLasts"
)

// fallbackOf encodes the narrowest-to-broadest escalation chain of §4.4.
// Tag, TagChildren, and TagNesting are top-level classes with no
// fallback; their default strategy, when unset or unrecognized, is
// throwError.
var fallbackOf = map[ViolationCode]ViolationCode{
	CollectionTooMany: AttributeValue,
	RecordDuplicate:   AttributeValue,
	RecordValue:       AttributeValue,
	SetValue:          AttributeValue,
	ValueTooLong:      AttributeValue,
	AttributeValue:    Attribute,
	Attribute:         Tag,
}

// nativeStrategies lists, per class, the strategies that class
// recognizes directly without escalating.
var nativeStrategies = map[ViolationCode]map[Strategy]bool{
	CollectionTooMany: {StrategyDropExtra: true},
	RecordDuplicate: {
		StrategyDropDuplicates: true,
		StrategyKeepDuplicates: true,
		StrategyKeepFirst:      true,
		StrategyKeepLast:       true,
	},
	RecordValue:    {StrategyDropPair: true},
	SetValue:       {StrategyDropValue: true},
	ValueTooLong:   {StrategyTrimExcess: true},
	AttributeValue: {StrategyApplyDefaultValue: true},
	Attribute:      {StrategyDiscardAttribute: true},
	Tag: {
		StrategyDiscardElement: true,
		StrategyUnwrapElement:  true,
		StrategyThrowError:     true,
	},
	TagChildren: {
		StrategyDiscardElement: true,
		StrategyDiscardFirsts:  true,
		StrategyDiscardLasts:   true,
		StrategyThrowError:     true,
	},
	TagNesting: {
		StrategyDiscardElement: true,
		StrategyThrowError:     true,
	},
}

// isNative reports whether strat is understood directly by code, without
// escalating to a broader class.
func isNative(code ViolationCode, strat Strategy) bool {
	return nativeStrategies[code][strat]
}

// violationDetail carries the human-readable context a SanitizationError
// names: the offending tag/attribute/key/value.
type violationDetail struct {
	Tag       string
	Attribute string
	Key       string
	Value     string
}
