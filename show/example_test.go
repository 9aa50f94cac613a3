package show_test

import (
	"fmt"

	"github.com/katalvlaran/heartlight/show"
)

func ExampleNew() {
	cfg, err := show.Parse([]byte(`
channels:
  - name: solo
    subject: ecg.solo
ecg:
  rate: 130
  low: 5
  high: 15
heart_rate:
  window: 2
fixtures:
  ids: [401, 402, 403]
  anchors: [402]
mapping:
  set: rgb
  mode: glow
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	sh, err := show.New(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sh.Mode(), sh.Modes())
	// Output: glow [drift ember glow wave]
}
