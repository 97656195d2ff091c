package locale

// Message ids of the wk gallery and its prompt. Ids ending in a template
// field are rendered with Tf.
const (
	StatusError = "StatusError"

	GalleryPrompt          = "GalleryPrompt"
	GalleryLoading         = "GalleryLoading"
	GalleryTooSmall        = "GalleryTooSmall"
	GalleryMinimumSize     = "GalleryMinimumSize"
	GalleryOptionsReloaded = "GalleryOptionsReloaded"
	GalleryNoDate          = "GalleryNoDate"
	GallerySelectedDate    = "GallerySelectedDate"
	GalleryValue           = "GalleryValue"
	GalleryNoValue         = "GalleryNoValue"
	GalleryPageOf          = "GalleryPageOf"

	GalleryKeyNextFocus = "GalleryKeyNextFocus"
	GalleryKeyPrevFocus = "GalleryKeyPrevFocus"
	GalleryKeyNextPage  = "GalleryKeyNextPage"
	GalleryKeyPrevPage  = "GalleryKeyPrevPage"
	GalleryKeyHelp      = "GalleryKeyHelp"
	GalleryKeyQuit      = "GalleryKeyQuit"

	GalleryDateLabel        = "GalleryDateLabel"
	GalleryDateHelp         = "GalleryDateHelp"
	GalleryCityLabel        = "GalleryCityLabel"
	GallerySelectHelp       = "GallerySelectHelp"
	GalleryAutocompleteHelp = "GalleryAutocompleteHelp"
	GalleryFuzzyLabel       = "GalleryFuzzyLabel"
	GalleryFuzzyHelp        = "GalleryFuzzyHelp"

	GalleryDialogTitle  = "GalleryDialogTitle"
	GalleryDialogBody   = "GalleryDialogBody"
	GallerySizeSm       = "GallerySizeSm"
	GallerySizeDefault  = "GallerySizeDefault"
	GallerySizeLg       = "GallerySizeLg"
	GallerySizeXl       = "GallerySizeXl"
	GallerySizeFull     = "GallerySizeFull"
	GalleryDarkBackdrop = "GalleryDarkBackdrop"
	GalleryOpenDialog   = "GalleryOpenDialog"
	GalleryTooltipText  = "GalleryTooltipText"

	GalleryEmailLabel       = "GalleryEmailLabel"
	GalleryEmailPlaceholder = "GalleryEmailPlaceholder"
	GalleryPasswordLabel    = "GalleryPasswordLabel"
	GalleryPasswordHelp     = "GalleryPasswordHelp"
	GalleryAmountLabel      = "GalleryAmountLabel"
	GalleryTerms            = "GalleryTerms"
	GalleryPlanMonthly      = "GalleryPlanMonthly"
	GalleryPlanYearly       = "GalleryPlanYearly"
	GallerySubmit           = "GallerySubmit"
	GalleryEmailInvalid     = "GalleryEmailInvalid"
	GalleryPasswordShort    = "GalleryPasswordShort"
	GalleryFixFields        = "GalleryFixFields"
	GalleryAcceptTerms      = "GalleryAcceptTerms"
	GalleryChoosePlan       = "GalleryChoosePlan"
	GalleryFormSent         = "GalleryFormSent"

	GalleryStepProfile = "GalleryStepProfile"
	GalleryStepAddress = "GalleryStepAddress"
	GalleryStepPayment = "GalleryStepPayment"
	GalleryStepConfirm = "GalleryStepConfirm"
	GalleryStepPrev    = "GalleryStepPrev"
	GalleryStepNext    = "GalleryStepNext"
	GalleryTabInfos    = "GalleryTabInfos"
	GalleryTabDocs     = "GalleryTabDocs"
	GalleryTabHistory  = "GalleryTabHistory"
	GalleryDraft       = "GalleryDraft"

	GalleryAlertInfoTitle    = "GalleryAlertInfoTitle"
	GalleryAlertInfoBody     = "GalleryAlertInfoBody"
	GalleryAlertSuccessTitle = "GalleryAlertSuccessTitle"
	GalleryAlertSuccessBody  = "GalleryAlertSuccessBody"
	GalleryAlertWarningTitle = "GalleryAlertWarningTitle"
	GalleryAlertWarningBody  = "GalleryAlertWarningBody"
	GalleryAlertErrorTitle   = "GalleryAlertErrorTitle"
	GalleryAlertErrorBody    = "GalleryAlertErrorBody"
	GalleryRestoreAlerts     = "GalleryRestoreAlerts"
)

var galleryMessages = []string{
	StatusError,
	GalleryPrompt, GalleryLoading, GalleryTooSmall, GalleryMinimumSize,
	GalleryOptionsReloaded, GalleryNoDate, GallerySelectedDate, GalleryValue,
	GalleryNoValue, GalleryPageOf,
	GalleryKeyNextFocus, GalleryKeyPrevFocus, GalleryKeyNextPage, GalleryKeyPrevPage,
	GalleryKeyHelp, GalleryKeyQuit,
	GalleryDateLabel, GalleryDateHelp, GalleryCityLabel, GallerySelectHelp,
	GalleryAutocompleteHelp, GalleryFuzzyLabel, GalleryFuzzyHelp,
	GalleryDialogTitle, GalleryDialogBody, GallerySizeSm, GallerySizeDefault,
	GallerySizeLg, GallerySizeXl, GallerySizeFull, GalleryDarkBackdrop,
	GalleryOpenDialog, GalleryTooltipText,
	GalleryEmailLabel, GalleryEmailPlaceholder, GalleryPasswordLabel,
	GalleryPasswordHelp, GalleryAmountLabel, GalleryTerms, GalleryPlanMonthly,
	GalleryPlanYearly, GallerySubmit, GalleryEmailInvalid, GalleryPasswordShort,
	GalleryFixFields, GalleryAcceptTerms, GalleryChoosePlan, GalleryFormSent,
	GalleryStepProfile, GalleryStepAddress, GalleryStepPayment, GalleryStepConfirm,
	GalleryStepPrev, GalleryStepNext, GalleryTabInfos, GalleryTabDocs,
	GalleryTabHistory, GalleryDraft,
	GalleryAlertInfoTitle, GalleryAlertInfoBody, GalleryAlertSuccessTitle,
	GalleryAlertSuccessBody, GalleryAlertWarningTitle, GalleryAlertWarningBody,
	GalleryAlertErrorTitle, GalleryAlertErrorBody, GalleryRestoreAlerts,
}
