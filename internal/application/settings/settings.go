// Package settings defines application-level configuration data.
package settings

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up            string `yaml:"up" kong:"help='Up key',default='k'"`
	Down          string `yaml:"down" kong:"help='Down key',default='j'"`
	Open          string `yaml:"open" kong:"help='Open/activate key',default='enter'"`
	Back          string `yaml:"back" kong:"help='Back/close key',default='esc'"`
	Quit          string `yaml:"quit" kong:"help='Quit key',default='q'"`
	ToggleSidebar string `yaml:"toggle_sidebar" kong:"help='Expand/collapse sidebar key',default='ctrl+b'"`
	SwitchFocus   string `yaml:"switch_focus" kong:"help='Move focus between sidebar and main panel',default='tab'"`
	PrevPage      string `yaml:"prev_page" kong:"help='Previous page key',default='left,h'"`
	NextPage      string `yaml:"next_page" kong:"help='Next page key',default='right,l'"`
	FirstPage     string `yaml:"first_page" kong:"help='First page key',default='home,g'"`
	LastPage      string `yaml:"last_page" kong:"help='Last page key',default='end,G'"`
	Toggle        string `yaml:"toggle" kong:"help='Toggle key',default='space'"`
	ResetSidebar  string `yaml:"reset_sidebar" kong:"help='Reset sidebar state key',default='ctrl+r'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Border string `yaml:"border" kong:"help='Border color',default='63'"`
	Muted  string `yaml:"muted" kong:"help='Muted text color',default='240'"`
}

// PaginationConfig defines the pagination window parameters.
type PaginationConfig struct {
	Siblings  int `yaml:"siblings" kong:"help='Pages shown on each side of the current page',default='1'" validate:"gte=0"`
	Edges     int `yaml:"edges" kong:"help='Pages always shown at the start and end',default='1'" validate:"gte=0"`
	DemoPages int `yaml:"demo_pages" kong:"help='Total pages in the gallery demo',default='20'" validate:"gte=0"`
}

// SidebarConfig defines sidebar geometry and its initial state.
type SidebarConfig struct {
	Expanded       bool `yaml:"expanded" kong:"help='Start with the sidebar expanded',default='true'"`
	Breakpoint     int  `yaml:"breakpoint" kong:"help='Terminal width below which the sidebar becomes a drawer',default='100'" validate:"gt=0"`
	ExpandedWidth  int  `yaml:"expanded_width" kong:"help='Expanded sidebar width',default='28'" validate:"gtfield=CollapsedWidth"`
	CollapsedWidth int  `yaml:"collapsed_width" kong:"help='Collapsed sidebar width',default='6'" validate:"gt=0"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level" kong:"help='Log level (trace/debug/info/warn/error/disabled)',default='info'" validate:"oneof=trace debug info warn error disabled"`
	File  string `yaml:"file" kong:"help='Log file path'"`
}

// Settings represents the application configuration.
type Settings struct {
	Pagination PaginationConfig `yaml:"pagination" kong:"embed,prefix='pagination.'"`
	Sidebar    SidebarConfig    `yaml:"sidebar" kong:"embed,prefix='sidebar.'"`
	KeyMap     KeyMapConfig     `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme      ThemeConfig      `yaml:"theme" kong:"embed,prefix='theme.'"`
	Log        LogConfig        `yaml:"log" kong:"embed,prefix='log.'"`
	StateFile  string           `yaml:"state_file" kong:"help='UI state database path'"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Check reports settings the UI cannot work with. config.Load calls it after
// normalising the values.
func (s Settings) Check() error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid settings: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
}
