package model

import "strings"

// Type names with special meaning during path compilation.
const (
	TypeApplication = "Application"
	TypeWindow      = "Window"
	TypeOther       = "Other"
)

// AccessorMap maps debug-description type names to element query accessors.
var AccessorMap = map[string]string{
	"ActivityIndicator": "activityIndicators",
	"Alert":             "alerts",
	"Button":            "buttons",
	"Cell":              "cells",
	"CheckBox":          "checkBoxes",
	"CollectionView":    "collectionViews",
	"Image":             "images",
	"Key":               "keys",
	"Keyboard":          "keyboards",
	"Link":              "links",
	"Map":               "maps",
	"Menu":              "menus",
	"MenuBar":           "menuBars",
	"MenuItem":          "menuItems",
	"NavigationBar":     "navigationBars",
	"Other":             "otherElements",
	"PageIndicator":     "pageIndicators",
	"Picker":            "pickers",
	"PickerWheel":       "pickerWheels",
	"PopUpButton":       "popUpButtons",
	"ProgressIndicator": "progressIndicators",
	"RadioButton":       "radioButtons",
	"ScrollBar":         "scrollBars",
	"ScrollView":        "scrollViews",
	"SearchField":       "searchFields",
	"SecureTextField":   "secureTextFields",
	"SegmentedControl":  "segmentedControls",
	"Slider":            "sliders",
	"StaticText":        "staticTexts",
	"StatusBar":         "statusBars",
	"Switch":            "switches",
	"TabBar":            "tabBars",
	"Table":             "tables",
	"TextField":         "textFields",
	"TextView":          "textViews",
	"Toolbar":           "toolbars",
	"WebView":           "webViews",
	"Window":            "windows",
}

// Accessor converts a type name to its query accessor. Unknown types fall
// back to a lower-camel plural, e.g. "DatePicker" becomes "datePickers".
func Accessor(typeName string) string {
	if a, ok := AccessorMap[typeName]; ok {
		return a
	}
	if typeName == "" {
		return "otherElements"
	}
	return strings.ToLower(typeName[:1]) + typeName[1:] + "s"
}
