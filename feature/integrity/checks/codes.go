package checks

// IssueCode identifies a class of product data problem.
type IssueCode string

const (
	// CodeColorWithoutVariants marks a color no variant references; its size list
	// falls back to every size.
	CodeColorWithoutVariants IssueCode = "COLOR_WITHOUT_VARIANTS"
	// CodeDuplicateVariant marks two variants sharing an id or a color/size combination.
	CodeDuplicateVariant IssueCode = "DUPLICATE_VARIANT"
	// CodeDuplicateOptionValueID marks an option value id defined more than once.
	CodeDuplicateOptionValueID IssueCode = "DUPLICATE_OPTION_VALUE_ID"
	// CodeUnknownOptionValue marks a variant referencing an undefined option value.
	CodeUnknownOptionValue IssueCode = "UNKNOWN_OPTION_VALUE"
	// CodeOrphanMedia marks media bound to a color the product does not offer.
	CodeOrphanMedia IssueCode = "ORPHAN_MEDIA"
	// CodeMissingPrice marks a product with no usable price for some purchase.
	CodeMissingPrice IssueCode = "MISSING_PRICE"
	// CodeVariantWithoutSelectors marks a variant no selection can reach.
	CodeVariantWithoutSelectors IssueCode = "VARIANT_WITHOUT_SELECTORS"
)

// Issue is one finding of the product audit.
type Issue struct {
	Code    IssueCode `json:"code"`
	Message string    `json:"message"`
	Ref     string    `json:"ref,omitempty"`
}
