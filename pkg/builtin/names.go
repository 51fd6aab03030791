package builtin

// Canonical builtin component type names.
const (
	NameButton         = "Button"
	NameLabel          = "Label"
	NameTextBox        = "TextBox"
	NameTextArea       = "TextArea"
	NameCheckBox       = "CheckBox"
	NameRadioButton    = "RadioButton"
	NameDropDown       = "DropDown"
	NameDatePicker     = "DatePicker"
	NameImage          = "Image"
	NameLink           = "Link"
	NameSpacer         = "Spacer"
	NameTimer          = "Timer"
	NameRichText       = "RichText"
	NameCanvas         = "Canvas"
	NameFileLoader     = "FileLoader"
	NamePlot           = "Plot"
	NameColumnPanel    = "ColumnPanel"
	NameLinearPanel    = "LinearPanel"
	NameFlowPanel      = "FlowPanel"
	NameGridPanel      = "GridPanel"
	NameXYPanel        = "XYPanel"
	NameDataGrid       = "DataGrid"
	NameDataRowPanel   = "DataRowPanel"
	NameRepeatingPanel = "RepeatingPanel"
)
