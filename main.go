package main

import (
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/lunarhue/chargebeat/internal/beatmap"
	"github.com/lunarhue/chargebeat/internal/config"
	"github.com/lunarhue/chargebeat/internal/render"
	"github.com/lunarhue/chargebeat/internal/score"
	"github.com/lunarhue/chargebeat/internal/theme"
	"golang.org/x/term"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

// findAssets walks the song directory for the chart and an audio track.
// Either may be missing; the chart falls back to the built-in one and a
// missing track just means a silent session.
func findAssets(dir string) (chartFile, audioFile string, err error) {
	err = filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		switch path.Ext(info.Name()) {
		case ".mp3", ".ogg":
			audioFile = p
		case ".json":
			chartFile = p
		}
		return nil
	})
	return chartFile, audioFile, err
}

func startAudio(audioFile string, delay time.Duration) error {
	f, err := os.Open(audioFile)
	if nil != err {
		return err
	}
	var streamer beep.StreamSeekCloser
	var format beep.Format
	if path.Ext(audioFile) == ".ogg" {
		streamer, format, err = vorbis.Decode(f)
	} else {
		streamer, format, err = mp3.Decode(f)
	}
	if nil != err {
		return err
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); nil != err {
		return err
	}
	go func() {
		time.Sleep(delay)
		speaker.Play(beep.Seq(streamer, beep.Callback(func() {
			streamer.Close()
		})))
	}()
	return nil
}

func run() error {
	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{Period: *config.FramePeriod}
	var th theme.Theme = &theme.DefaultTheme{}
	var sc score.Scorer = &score.DefaultScorer{}
	var rec score.Records = &score.DefaultRecords{}
	var psr beatmap.Parser = &beatmap.DefaultParser{}

	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return err
	}

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return err
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard:", err)
		}
	}()

	chartFile, audioFile, err := findAssets(*config.Directory)
	if nil != err {
		return err
	}

	b := beatmap.Load(psr, chartFile)
	if b.Tempo <= 0 {
		// Load guarantees a usable chart; a bad tempo here is a bug.
		panic("beatmap tempo not positive after load")
	}

	if err := rec.Init(); nil != err {
		return err
	}
	defer rec.Deinit()

	p := &Program{
		Renderer: r,
		Theme:    th,
		Scorer:   sc,
		Records:  rec,
	}
	if err := p.Init(b, rows, columns, keyChannel); nil != err {
		return err
	}

	if audioFile != "" {
		if err := startAudio(audioFile, *config.Delay); nil != err {
			log.Println("unable to start audio, continuing silent:", err)
		}
	}

	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		if err := r.Deinit(); nil != err {
			log.Println("unable to restore terminal:", err)
		}
	}()

	r.RenderLoop(*config.Delay, p.Tick)
	return nil
}
