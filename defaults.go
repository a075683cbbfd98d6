package main

func defaultLabel(k Kind) string {
	switch k {
	case KindRectangle:
		return "Box"
	case KindCircle:
		return "Circle"
	case KindText:
		return "Text"
	case KindImage:
		return "Image"
	case KindButton:
		return "Button"
	case KindInput:
		return "Input"
	case KindCheckbox:
		return "Checkbox"
	case KindRadio:
		return "Option"
	case KindToggle:
		return "Toggle"
	case KindNavbar:
		return "Navigation"
	case KindSidebar:
		return "Sidebar"
	default:
		return ""
	}
}

func defaultStyle(k Kind) Style {
	s := Style{
		Fill:     "",
		Border:   "#374151",
		FontSize: 14,
		Align:    "center",
		Opacity:  1,
	}
	switch k {
	case KindRectangle:
		s.Fill = "#F3F4F6"
	case KindButton:
		s.Fill = "#E5E7EB"
	case KindInput:
		s.Fill = "#FFFFFF"
		s.Align = "left"
	case KindCheckbox, KindRadio, KindToggle:
		s.Align = "left"
	case KindNavbar:
		s.Fill = "#E5E7EB"
		s.Align = "left"
	case KindSidebar:
		s.Fill = "#F9FAFB"
		s.Align = "left"
	case KindImage:
		s.Fill = "#E5E7EB"
	case KindText:
		s.Border = ""
		s.Align = "left"
	case KindLine:
		s.FontSize = 0
	}
	return s
}

func newElement(id string, k Kind, r Rect) Element {
	return Element{
		ID:      id,
		Kind:    k,
		X:       r.X,
		Y:       r.Y,
		Width:   r.Width,
		Height:  r.Height,
		Label:   defaultLabel(k),
		Visible: true,
		Style:   defaultStyle(k),
	}
}
