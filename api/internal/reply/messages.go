package reply

const (
	msgTextFallback = "ขอโทษครับ ขณะนี้ระบบตอบคำถามไม่สามารถใช้งานได้ 🙏\n\nคุณสามารถส่งรูปน้องหมามาให้ผมทายสายพันธุ์ได้เลยครับ 🐶"
	msgImageError   = "ขอโทษครับ เกิดข้อผิดพลาดในการทำนาย กรุณาลองใหม่อีกครั้ง"

	predictionHeader = "🐶 สายพันธ์น้องหมา\n📊 มีความน่าจะเป็นดังนี้:\n"
	enrichmentHeader = "\n\n📖 ข้อมูลเพิ่มเติม:\n"

	// args: b0 p0 b1 p1 b2 p2 b0 b0 b1 b2
	enrichmentTemplate = `ผลการทำนายสายพันธุ์สุนัข:
1. %s (%.1f%%)
2. %s (%.1f%%)
3. %s (%.1f%%)

กรุณาให้ข้อมูลดังนี้:

1. ข้อมูลเกี่ยวกับสายพันธุ์ %s (สายพันธุ์ที่มีความน่าจะเป็นสูงสุด):
   - ลักษณะเด่น
   - นิสัย
   - ขนาดตัว
   - การดูแล

2. เปรียบเทียบความแตกต่างระหว่าง 3 สายพันธุ์นี้:
   - %s
   - %s
   - %s

ตอบเป็นภาษาไทยแบบกระชับและเข้าใจง่าย ไม่เกิน 500 คำ`
)

// Canned phrases are matched on the exact, untrimmed message text.
const (
	PhraseHello = "สวัสดี"
	PhraseName  = "ชื่ออะไร"
)

// DefaultCanned returns a fresh copy of the built-in canned replies.
func DefaultCanned() map[string]string {
	return map[string]string{
		PhraseHello: "สวัสดีครับ ยินดีที่ได้รู้จักนะครับ 😊",
		PhraseName:  "ผมชื่อไลน์บอทครับ สามารถส่งรูปน้องหมามาให้ผมทายสายพันธุ์ได้เลยครับ 🐶",
	}
}

// TextFallback is what users see when no backend could answer.
func TextFallback() string { return msgTextFallback }

// ImageError is what users see when a photo could not be classified.
func ImageError() string { return msgImageError }
