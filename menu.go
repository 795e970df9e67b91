package main

import (
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// applicationMenu builds the native menu. Items only emit menu:<command>
// events; the frontend maps them onto the same handlers as its keyboard
// shortcuts, so the store never sees the keyboard directly.
func applicationMenu(app *App) *menu.Menu {
	emit := func(command string) func(*menu.CallbackData) {
		return func(*menu.CallbackData) {
			if app.ctx == nil {
				return
			}
			wailsRuntime.EventsEmit(app.ctx, "menu:"+command)
		}
	}

	appMenu := menu.NewMenu()
	appMenu.Append(menu.AppMenu())

	fileMenu := appMenu.AddSubmenu("File")
	fileMenu.AddText("New Tab", keys.CmdOrCtrl("t"), emit("new"))
	fileMenu.AddText("Open…", keys.CmdOrCtrl("o"), emit("open"))
	fileMenu.AddSeparator()
	fileMenu.AddText("Save", keys.CmdOrCtrl("s"), emit("save"))
	fileMenu.AddSeparator()
	fileMenu.AddText("Close Tab", keys.CmdOrCtrl("w"), emit("close"))

	// Standard edit menu so cut/copy/paste work inside the webview
	appMenu.Append(menu.EditMenu())

	viewMenu := appMenu.AddSubmenu("View")
	viewMenu.AddText("Increase Font Size", keys.CmdOrCtrl("+"), emit("font-increase"))
	viewMenu.AddText("Decrease Font Size", keys.CmdOrCtrl("-"), emit("font-decrease"))
	viewMenu.AddText("Reset Font Size", keys.CmdOrCtrl("0"), emit("font-reset"))
	viewMenu.AddSeparator()
	viewMenu.AddText("Toggle Word Wrap", keys.Combo("z", keys.CmdOrCtrlKey, keys.OptionOrAltKey), emit("wrap-toggle"))

	return appMenu
}
