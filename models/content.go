package models

// ContentType discriminates the kind of payload a content item carries.
// Values are stable wire strings; unrecognised values must survive decoding
// so that newer documents do not break older readers.
type ContentType string

const (
	ContentText         ContentType = "text"
	ContentMedia        ContentType = "media"
	ContentList         ContentType = "list"
	ContentActions      ContentType = "actions"
	ContentTimer        ContentType = "timer"
	ContentHTML         ContentType = "html"
	ContentFeatures     ContentType = "features"
	ContentStatistics   ContentType = "statistics"
	ContentDetails      ContentType = "details"
	ContentTestimonials ContentType = "testimonials"
)

// TextVariant selects the typographic role of a text item.
type TextVariant string

const (
	TextHeading   TextVariant = "heading"
	TextSubtitle  TextVariant = "subtitle"
	TextParagraph TextVariant = "paragraph"
	TextCaption   TextVariant = "caption"
	TextKPI       TextVariant = "kpi"
	TextList      TextVariant = "list"
)

// ListRole describes what the items of a list content block represent.
type ListRole string

const (
	RoleFeature     ListRole = "feature"
	RoleTestimonial ListRole = "testimonial"
	RoleFAQ         ListRole = "faq"
	RolePlan        ListRole = "plan"
	RoleBenefit     ListRole = "benefit"
	RoleDetail      ListRole = "detail"
	RoleStat        ListRole = "stat"
)

// MediaKind enumerates the supported media sources.
type MediaKind string

const (
	MediaImage   MediaKind = "image"
	MediaVideo   MediaKind = "video"
	MediaYoutube MediaKind = "youtube"
	MediaVimeo   MediaKind = "vimeo"
)

// ActionKind enumerates what clicking an action should do.
type ActionKind string

const (
	ActionLink     ActionKind = "link"
	ActionBuy      ActionKind = "buy"
	ActionDownload ActionKind = "download"
	ActionContact  ActionKind = "contact"
	ActionMoreInfo ActionKind = "more_info"
)

// ActionStyle is the visual weight of an action button.
type ActionStyle string

const (
	StylePrimary   ActionStyle = "primary"
	StyleSecondary ActionStyle = "secondary"
	StyleOutline   ActionStyle = "outline"
	StyleGhost     ActionStyle = "ghost"
)

// TimerStyle selects the timer presentation.
type TimerStyle string

const (
	TimerCountdown TimerStyle = "countdown"
	TimerProgress  TimerStyle = "progress"
	TimerCircular  TimerStyle = "circular"
)

// UrgencyKind enumerates scarcity messaging types.
type UrgencyKind string

const (
	UrgencyLimitedTime     UrgencyKind = "limited_time"
	UrgencyLimitedQuantity UrgencyKind = "limited_quantity"
	UrgencyFlashSale       UrgencyKind = "flash_sale"
)

// MediaDescriptor points at an externally hosted media asset.
type MediaDescriptor struct {
	Kind     MediaKind `bson:"kind" json:"kind"`
	URL      string    `bson:"url" json:"url"`
	Alt      string    `bson:"alt,omitempty" json:"alt,omitempty"`
	Poster   string    `bson:"poster,omitempty" json:"poster,omitempty"`
	Autoplay bool      `bson:"autoplay,omitempty" json:"autoplay,omitempty"`
	Loop     bool      `bson:"loop,omitempty" json:"loop,omitempty"`
	Muted    bool      `bson:"muted,omitempty" json:"muted,omitempty"`
}

// PriceDescriptor carries an amount in a currency, with an optional original
// (pre-discount) amount. original >= amount is a data-quality convention,
// deliberately not enforced on write.
type PriceDescriptor struct {
	Amount   float64 `bson:"amount" json:"amount"`
	Currency string  `bson:"currency" json:"currency"`
	Original float64 `bson:"original,omitempty" json:"original,omitempty"`
}

// DiscountValid reports whether the original price can be shown as a
// strikethrough next to the current amount.
func (p PriceDescriptor) DiscountValid() bool {
	return p.Original > 0 && p.Original >= p.Amount
}

// ActionDescriptor describes one call-to-action button.
type ActionDescriptor struct {
	Text   MultiLanguageContent `bson:"text" json:"text"`
	URL    string               `bson:"url" json:"url"`
	Action ActionKind           `bson:"action" json:"action"`
	Style  ActionStyle          `bson:"style" json:"style"`
	Price  *PriceDescriptor     `bson:"price,omitempty" json:"price,omitempty"`
}

// UrgencyDescriptor carries scarcity messaging attached to an actions item.
type UrgencyDescriptor struct {
	Type     UrgencyKind          `bson:"type" json:"type"`
	Message  MultiLanguageContent `bson:"message" json:"message"`
	EndDate  string               `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Quantity int                  `bson:"quantity,omitempty" json:"quantity,omitempty"`
}

// StatValue is the rendered figure of a statistics item.
type StatValue struct {
	Value string `bson:"value" json:"value"`
	Color string `bson:"color" json:"color"`
}

// QA is a question/answer pair for FAQ items.
type QA struct {
	Q MultiLanguageContent `bson:"q" json:"q"`
	A MultiLanguageContent `bson:"a" json:"a"`
}

// ListItem is one entry of a list-like content item. Which optional fields
// are populated depends on the item role.
type ListItem struct {
	ID          string                 `bson:"id,omitempty" json:"id,omitempty"`
	Role        ListRole               `bson:"role" json:"role"`
	Title       MultiLanguageContent   `bson:"title" json:"title"`
	Subtitle    MultiLanguageContent   `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Text        MultiLanguageContent   `bson:"text,omitempty" json:"text,omitempty"`
	Media       *MediaDescriptor       `bson:"media,omitempty" json:"media,omitempty"`
	Rating      float64                `bson:"rating,omitempty" json:"rating,omitempty"`
	Price       *PriceDescriptor       `bson:"price,omitempty" json:"price,omitempty"`
	Features    []MultiLanguageContent `bson:"features,omitempty" json:"features,omitempty"`
	Highlighted bool                   `bson:"highlighted,omitempty" json:"highlighted,omitempty"`
	Popular     bool                   `bson:"popular,omitempty" json:"popular,omitempty"`
	Tags        []string               `bson:"tags,omitempty" json:"tags,omitempty"`
	Stat        *StatValue             `bson:"stat,omitempty" json:"stat,omitempty"`
	QA          *QA                    `bson:"qa,omitempty" json:"qa,omitempty"`
	CTA         *ActionDescriptor      `bson:"cta,omitempty" json:"cta,omitempty"`
	Meta        map[string]any         `bson:"meta,omitempty" json:"meta,omitempty"`
}

// ContentItem is one typed unit of payload inside a block. It is a tagged
// union over Type: only the field group matching the tag is meaningful, the
// rest stay at their zero values. Items with an unrecognised tag decode
// cleanly and are rendered as placeholders downstream, never rejected.
type ContentItem struct {
	Type  ContentType `bson:"type" json:"type"`
	Order int         `bson:"order" json:"order"`

	// text and html
	Variant TextVariant          `bson:"variant,omitempty" json:"variant,omitempty"`
	Value   MultiLanguageContent `bson:"value,omitempty" json:"value,omitempty"`

	// media
	Media *MediaDescriptor `bson:"media,omitempty" json:"media,omitempty"`

	// list, features, statistics, details, testimonials
	Role      ListRole   `bson:"role,omitempty" json:"role,omitempty"`
	Items     []ListItem `bson:"items,omitempty" json:"items,omitempty"`
	Accordion bool       `bson:"accordion,omitempty" json:"accordion,omitempty"`

	// actions
	Primary   *ActionDescriptor      `bson:"primary,omitempty" json:"primary,omitempty"`
	Secondary *ActionDescriptor      `bson:"secondary,omitempty" json:"secondary,omitempty"`
	Benefits  []MultiLanguageContent `bson:"benefits,omitempty" json:"benefits,omitempty"`
	Urgency   *UrgencyDescriptor     `bson:"urgency,omitempty" json:"urgency,omitempty"`

	// timer
	EndDate  string               `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Title    MultiLanguageContent `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle MultiLanguageContent `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Style    TimerStyle           `bson:"style,omitempty" json:"style,omitempty"`
}

// KnownContentTypes lists every content tag this version understands.
func KnownContentTypes() []ContentType {
	return []ContentType{
		ContentText, ContentMedia, ContentList, ContentActions, ContentTimer,
		ContentHTML, ContentFeatures, ContentStatistics, ContentDetails,
		ContentTestimonials,
	}
}
