package plan

import "fmt"

type Kind int

const (
	KindDir Kind = iota
	KindFile
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindDir:  "Directory",
		KindFile: "File",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Directory": KindDir,
		"File":      KindFile,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{KindDir, KindFile}
}
