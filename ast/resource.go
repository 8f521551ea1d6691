package ast

// ResourceKind classifies the type keyword of a resource statement, per
// spec.md §3's Resource enum. Ordinal-only variants (no dedicated keyword)
// are still named here because the emitter dispatches on them exactly like
// the keyworded ones.
type ResourceKind int

const (
	ResUnknown ResourceKind = iota
	ResCursor
	ResBitmap
	ResIcon
	ResMenu
	ResDialog
	ResString
	ResFontDir
	ResFont
	ResAccelerators
	ResRCData
	ResMessageTable
	ResGroupCursor
	ResGroupIcon
	ResVersionInfo
	ResDlgInclude
	ResPlugPlay
	ResVxd
	ResAniCursor
	ResAniIcon
	ResHTML
	ResManifest
	ResDlgInit
	ResToolbar
	ResMenuEx
	ResDialogEx
	ResUserDefined
)

// Predefined numeric resource-type ordinals (RT_* constants of the
// reference compiler), used both to classify a numeric type keyword and to
// write the type field of a resource header when the resource has no name
// keyword.
const (
	RTCursor        = 1
	RTBitmap        = 2
	RTIcon          = 3
	RTMenu          = 4
	RTDialog        = 5
	RTString        = 6
	RTFontDir       = 7
	RTFont          = 8
	RTAccelerator   = 9
	RTRCData        = 10
	RTMessageTable  = 11
	RTGroupCursor   = 12
	RTGroupIcon     = 14
	RTVersion       = 16
	RTDlgInclude    = 17
	RTPlugPlay      = 19
	RTVxd           = 20
	RTAniCursor     = 21
	RTAniIcon       = 22
	RTHTML          = 23
	RTManifest      = 24
	RTDlgInit       = 240
	RTToolbar       = 241
)

// ClassifyResourceType maps a numeric resource-type value, per spec.md §3:
// "A numeric type >= 256 is forced to user_defined." Type 6 (STRING) must
// be rejected by the caller before reaching here (spec.md §3).
func ClassifyResourceType(n uint16) ResourceKind {
	if n >= 256 {
		return ResUserDefined
	}
	switch n {
	case RTCursor:
		return ResCursor
	case RTBitmap:
		return ResBitmap
	case RTIcon:
		return ResIcon
	case RTMenu:
		return ResMenu
	case RTDialog:
		return ResDialog
	case RTString:
		return ResString
	case RTFontDir:
		return ResFontDir
	case RTFont:
		return ResFont
	case RTAccelerator:
		return ResAccelerators
	case RTRCData:
		return ResRCData
	case RTMessageTable:
		return ResMessageTable
	case RTGroupCursor:
		return ResGroupCursor
	case RTGroupIcon:
		return ResGroupIcon
	case RTVersion:
		return ResVersionInfo
	case RTDlgInclude:
		return ResDlgInclude
	case RTPlugPlay:
		return ResPlugPlay
	case RTVxd:
		return ResVxd
	case RTAniCursor:
		return ResAniCursor
	case RTAniIcon:
		return ResAniIcon
	case RTHTML:
		return ResHTML
	case RTManifest:
		return ResManifest
	case RTDlgInit:
		return ResDlgInit
	case RTToolbar:
		return ResToolbar
	}
	return ResUserDefined
}

// MemFlags is the 16-bit memory-flags bitfield of spec.md §3.
type MemFlags uint16

const (
	MemMoveable   MemFlags = 0x10
	MemShared     MemFlags = 0x20
	MemPure                = MemShared
	MemPreload    MemFlags = 0x40
	MemLoadOnCall MemFlags = 0x00
	MemDiscardable MemFlags = 0x1000
	MemFixed      MemFlags = 0x00
	MemNonShared  MemFlags = 0x00
	MemImpure     MemFlags = 0x00
)

// ApplyAttrKeyword applies one common-resource-attribute keyword to flags,
// per spec.md §3's "fixed rule set": DISCARDABLE implies MOVEABLE|SHARED;
// FIXED clears MOVEABLE|DISCARDABLE; etc.
func (f MemFlags) ApplyAttrKeyword(kw string) MemFlags {
	switch kw {
	case "PRELOAD":
		return f | MemPreload
	case "LOADONCALL":
		return f &^ MemPreload
	case "MOVEABLE":
		return f | MemMoveable
	case "FIXED":
		return f &^ (MemMoveable | MemDiscardable)
	case "SHARED", "PURE":
		return f | MemShared
	case "NONSHARED", "IMPURE":
		return f &^ MemShared
	case "DISCARDABLE":
		return f | MemDiscardable | MemMoveable | MemShared
	}
	return f
}

// DefaultMemFlags returns the default memory flags for a predefined
// resource kind, per spec.md §4.5's table. Kinds not listed there (e.g.
// user-defined, dialog controls) default to 0.
func DefaultMemFlags(k ResourceKind) MemFlags {
	switch k {
	case ResIcon, ResCursor:
		return MemMoveable | MemDiscardable
	case ResRCData, ResBitmap, ResHTML, ResAccelerators, ResManifest:
		return MemMoveable | MemShared
	case ResGroupIcon, ResGroupCursor, ResString, ResFont, ResDialog:
		return MemMoveable | MemShared | MemDiscardable
	case ResFontDir:
		return MemMoveable | MemPreload
	}
	return 0
}

// Rebase reapplies the net effect of whatever attribute keywords turned
// f (computed from oldDefault) into its current value, onto newDefault
// instead. Used when one statement's common attrs govern two differently-
// defaulted resources, e.g. an ICON/CURSOR statement's attrs apply to its
// GROUP_ICON/GROUP_CURSOR record, not to the fixed-flag sub-resources.
func (f MemFlags) Rebase(oldDefault, newDefault MemFlags) MemFlags {
	added := f &^ oldDefault
	removed := oldDefault &^ f
	return (newDefault | added) &^ removed
}

// IsAttrKeyword reports whether text is one of the common resource
// attribute keywords of the GLOSSARY.
func IsAttrKeyword(text string) bool {
	switch text {
	case "PRELOAD", "LOADONCALL", "MOVEABLE", "FIXED", "SHARED", "NONSHARED",
		"PURE", "IMPURE", "DISCARDABLE":
		return true
	}
	return false
}
