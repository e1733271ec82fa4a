package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	. "github.com/smartystreets/goconvey/convey"

	"rephraser/internal/config"
	mdl "rephraser/internal/model"
	"rephraser/internal/pkg/cache"
	"rephraser/internal/pkg/groq"
)

type fakeChatModel struct {
	content string
	err     error
	calls   int
}

func (f *fakeChatModel) Generate(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.content, nil), nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := f.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

type memCache struct {
	data   map[string]string
	getErr error
	sets   int
	ttl    time.Duration
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}}
}

func (m *memCache) Get(_ context.Context, key string, dest any) error {
	if m.getErr != nil {
		return m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return cache.ErrMiss
	}
	*(dest.(*string)) = v
	return nil
}

func (m *memCache) Set(_ context.Context, key string, value any, expiration time.Duration) error {
	m.sets++
	m.ttl = expiration
	m.data[key] = value.(string)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		AI: config.AIConfig{
			Provider: "groq",
			APIKey:   "gsk-test",
			Model:    "llama3-70b-8192",
			Options:  config.AIOptionsConfig{Temperature: 0.7, MaxTokens: 1024},
		},
		Moods: append([]string(nil), config.DefaultMoods...),
	}
}

func TestTextService_Rephrase(t *testing.T) {
	Convey("TextService.Rephrase", t, func() {
		ctx := context.Background()
		fake := &fakeChatModel{content: "Can't wait for tomorrow's meeting!"}
		svc, err := NewTextService(testConfig(), fake)
		So(err, ShouldBeNil)

		Convey("合法语气返回改写结果并原样回显输入", func() {
			req := &mdl.RephraseRequest{Text: "I need to attend a meeting tomorrow.", Mood: "excited"}
			resp, err := svc.Rephrase(ctx, req)
			So(err, ShouldBeNil)
			So(resp, ShouldResemble, &mdl.RephraseResponse{
				OriginalText:  "I need to attend a meeting tomorrow.",
				Mood:          "excited",
				RephrasedText: "Can't wait for tomorrow's meeting!",
			})
		})

		Convey("所有配置语气（任意大小写）都能通过校验", func() {
			for _, m := range config.DefaultMoods {
				for _, variant := range []string{m, strings.ToUpper(m), strings.ToUpper(m[:1]) + m[1:]} {
					_, err := svc.Rephrase(ctx, &mdl.RephraseRequest{Text: "hi", Mood: variant})
					So(err, ShouldBeNil)
				}
			}
			So(fake.calls, ShouldEqual, len(config.DefaultMoods)*3)
		})

		Convey("回显的语气保持调用方大小写", func() {
			resp, err := svc.Rephrase(ctx, &mdl.RephraseRequest{Text: "hi", Mood: "ExCiTeD"})
			So(err, ShouldBeNil)
			So(resp.Mood, ShouldEqual, "ExCiTeD")
		})

		Convey("original_text 逐字节回显", func() {
			text := "  tabs\tand 中文 and trailing newline\n"
			resp, err := svc.Rephrase(ctx, &mdl.RephraseRequest{Text: text, Mood: "calm"})
			So(err, ShouldBeNil)
			So(resp.OriginalText, ShouldEqual, text)
		})

		Convey("未知语气返回输入错误且不调用模型", func() {
			_, err := svc.Rephrase(ctx, &mdl.RephraseRequest{Text: "hi", Mood: "ecstatic"})
			So(KindOf(err), ShouldEqual, KindInvalidInput)
			So(err.Error(), ShouldEqual, "Invalid mood. Available moods: "+strings.Join(config.DefaultMoods, ", "))
			So(fake.calls, ShouldEqual, 0)
		})

		Convey("空串语气返回输入错误且不调用模型", func() {
			_, err := svc.Rephrase(ctx, &mdl.RephraseRequest{Text: "hi", Mood: ""})
			So(KindOf(err), ShouldEqual, KindInvalidInput)
			So(err.Error(), ShouldEqual, "Invalid mood. Available moods: "+strings.Join(config.DefaultMoods, ", "))
			So(fake.calls, ShouldEqual, 0)
		})

		Convey("语气校验不做空白裁剪", func() {
			_, err := svc.Rephrase(ctx, &mdl.RephraseRequest{Text: "hi", Mood: " happy"})
			So(KindOf(err), ShouldEqual, KindInvalidInput)
		})

		Convey("传输错误映射为 upstream", func() {
			fake.err = &groq.TransportError{Err: errors.New("dial tcp: connection refused")}
			_, err := svc.Rephrase(ctx, &mdl.RephraseRequest{Text: "hi", Mood: "happy"})
			So(KindOf(err), ShouldEqual, KindUpstream)
			So(err.Error(), ShouldStartWith, "Error contacting Groq API: ")
			So(err.Error(), ShouldContainSubstring, "dial tcp: connection refused")
		})

		Convey("响应结构错误映射为 parse", func() {
			fake.err = &groq.ParseError{Reason: "choices[0]: list index out of range"}
			_, err := svc.Rephrase(ctx, &mdl.RephraseRequest{Text: "hi", Mood: "happy"})
			So(KindOf(err), ShouldEqual, KindParse)
			So(err.Error(), ShouldStartWith, "Error parsing Groq API response: ")
			So(err.Error(), ShouldNotContainSubstring, "Error contacting")
		})

		Convey("其他错误映射为 internal", func() {
			fake.err = errors.New("unexpected")
			_, err := svc.Rephrase(ctx, &mdl.RephraseRequest{Text: "hi", Mood: "happy"})
			So(KindOf(err), ShouldEqual, KindInternal)
		})
	})
}

func TestTextService_FixGrammar(t *testing.T) {
	Convey("TextService.FixGrammar", t, func() {
		ctx := context.Background()
		fake := &fakeChatModel{content: "I went to the store yesterday."}
		svc, err := NewTextService(testConfig(), fake)
		So(err, ShouldBeNil)

		Convey("不校验语气，直接调用模型", func() {
			resp, err := svc.FixGrammar(ctx, &mdl.GrammarFixRequest{Text: "I has went to the store yesterday."})
			So(err, ShouldBeNil)
			So(resp, ShouldResemble, &mdl.GrammarFixResponse{
				OriginalText:  "I has went to the store yesterday.",
				CorrectedText: "I went to the store yesterday.",
			})
			So(fake.calls, ShouldEqual, 1)
		})

		Convey("传输错误", func() {
			fake.err = &groq.TransportError{StatusCode: 503, Body: "over capacity"}
			_, err := svc.FixGrammar(ctx, &mdl.GrammarFixRequest{Text: "x"})
			So(KindOf(err), ShouldEqual, KindUpstream)
			So(err.Error(), ShouldContainSubstring, "over capacity")
		})
	})
}

func TestTextService_Cache(t *testing.T) {
	Convey("启用补全缓存", t, func() {
		ctx := context.Background()
		fake := &fakeChatModel{content: "cached answer"}
		mc := newMemCache()
		svc, err := NewTextService(testConfig(), fake, WithCache(mc, time.Minute))
		So(err, ShouldBeNil)

		req := &mdl.RephraseRequest{Text: "hello", Mood: "happy"}

		Convey("第二次请求命中缓存", func() {
			_, err := svc.Rephrase(ctx, req)
			So(err, ShouldBeNil)
			resp, err := svc.Rephrase(ctx, req)
			So(err, ShouldBeNil)
			So(resp.RephrasedText, ShouldEqual, "cached answer")
			So(fake.calls, ShouldEqual, 1)
			So(mc.ttl, ShouldEqual, time.Minute)
		})

		Convey("不同操作不共享缓存", func() {
			_, err := svc.Rephrase(ctx, req)
			So(err, ShouldBeNil)
			_, err = svc.FixGrammar(ctx, &mdl.GrammarFixRequest{Text: "hello"})
			So(err, ShouldBeNil)
			So(fake.calls, ShouldEqual, 2)
		})

		Convey("失败结果不缓存", func() {
			fake.err = &groq.ParseError{Reason: "bad"}
			_, err := svc.Rephrase(ctx, req)
			So(err, ShouldNotBeNil)
			So(mc.sets, ShouldEqual, 0)
		})

		Convey("缓存读取失败时仍调用模型", func() {
			mc.getErr = errors.New("redis down")
			resp, err := svc.Rephrase(ctx, req)
			So(err, ShouldBeNil)
			So(resp.RephrasedText, ShouldEqual, "cached answer")
			So(fake.calls, ShouldEqual, 1)
		})

		Convey("非法语气不查询缓存", func() {
			_, err := svc.Rephrase(ctx, &mdl.RephraseRequest{Text: "hello", Mood: "nope"})
			So(KindOf(err), ShouldEqual, KindInvalidInput)
			So(mc.sets, ShouldEqual, 0)
		})
	})
}

func TestTextService_Moods(t *testing.T) {
	Convey("Moods 返回副本并保持顺序", t, func() {
		svc, err := NewTextService(testConfig(), &fakeChatModel{})
		So(err, ShouldBeNil)

		moods := svc.Moods()
		So(moods, ShouldResemble, config.DefaultMoods)
		moods[0] = "mutated"
		So(svc.Moods()[0], ShouldEqual, "happy")
	})

	Convey("NewTextService 拒绝 nil 模型", t, func() {
		_, err := NewTextService(testConfig(), nil)
		So(err, ShouldNotBeNil)
	})
}

func TestInputChars(t *testing.T) {
	Convey("输入长度按字符而非字节计算", t, func() {
		So(inputChars(""), ShouldEqual, 0)
		So(inputChars("hello"), ShouldEqual, 5)
		So(inputChars("héllo"), ShouldEqual, 5)
		So(inputChars("你好，世界"), ShouldEqual, 5)
	})
}

func TestKind_String(t *testing.T) {
	Convey("Kind.String", t, func() {
		So(KindInvalidInput.String(), ShouldEqual, "invalid_input")
		So(KindUpstream.String(), ShouldEqual, "upstream")
		So(KindParse.String(), ShouldEqual, "parse")
		So(KindInternal.String(), ShouldEqual, "internal")
		So(Kind(0).String(), ShouldEqual, "unknown")
		So(KindOf(errors.New("plain")), ShouldEqual, KindInternal)
	})
}
