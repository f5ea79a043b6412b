package handler

import "fmt"

// User- and owner-facing message catalog. The bot speaks Arabic to end users;
// owner commands reply in kind.
const (
	// DefaultWelcomeMessage greets a user once per cooldown window.
	// {user_name} is replaced with the sender's display name.
	DefaultWelcomeMessage = "👋 أهلاً بك {user_name} في بوت حساب أسعار الطباعة! أرسل لي ملف PDF, DOCX, أو PPTX وسأقوم بحساب السعر لك. يمكنك إرسال أي رسالة نصية أخرى بعد إرسال الملفات للحصول على المجموع الكلي."

	// DefaultAutoReplyMessage is sent instead of the normal waiting reply
	// when the owner enables custom auto-reply mode
	DefaultAutoReplyMessage = "صاحب الحساب غير متوفر حاليًا. سيتم الرد عليك لاحقًا."

	msgOwnerAlert         = "🔔 تنبيه للمالك: تم استلام ملف/رسالة جديدة من مستخدم."
	msgQueuedWhileAsleep  = "🔔 المستخدم `%d` أرسل رسالة أثناء وضع النوم وينتظر ردك."
	msgSleepApologySuffix = "\n\n📝 تم حساب السعر. صاحب المكتبة غير متوفر حاليًا، يرجى الانتظار حتى عودته لمتابعة طلبك."
	msgWaitingNormal      = "شكرًا لرسالتك. سيتم الرد عليك بأقرب وقت ممكن."
	msgCalculating        = "⏳ جار احتساب... يرجى الانتظار."

	msgFileTypeError   = "⚠️ يرجى إرسال ملف PDF، DOCX، أو PPTX فقط. الصور والأنواع الأخرى من الملفات غير مدعومة حالياً لحساب السعر."
	msgCountPagesError = "❌ لا يمكن معالجة هذا الملف: لم يتمكن البوت من قراءة عدد الصفحات أو الملف تالف."
	msgProcessingError = "❌ حدث خطأ أثناء معالجة الملف. يرجى المحاولة مرة أخرى."

	msgFilePriced = "📄 عدد الصفحات: %d\n💰 السعر بدون جلاد: %d دينار\n🏷️ السعر مع جلاد: %d دينار"
	msgFileAdded  = "\n\n✅ تم إضافة هذا الملف إلى طلبك. أرسل أي رسالة نصية لعرض المجموع الكلي وتأكيد الطلب."

	msgCumulativeTotal = "📊 المجموع الكلي للملفات المرسلة حتى الآن:\nبدون جلاد: %d دينار\nمع جلاد: %d دينار"
	msgConfirmPrompt   = "\n\n🤔 هل أنت موافق على سحب الملفات المرسلة بهذا السعر؟\nأجب بالكلمات المناسبة مثل `نعم`/`موافق` أو `لا`/`ارفض`."
	msgReask           = "🤔 لم أفهم إجابتك. يرجى الرد بـ `نعم`/`موافق` لتأكيد الطلب أو `لا`/`ارفض` لإلغائه."

	msgConfirmedAwake    = "✅ تم تأكيد طلبك وجارٍ معالجته. سيتم التواصل معك قريبًا."
	msgConfirmedSleeping = "✅ تم تسجيل طلبك. سيتم التواصل معك عند عودة صاحب المكتبة لمتابعة التفاصيل."
	msgRejectedAskReason = "تم إلغاء الطلب. إذا أمكن، يرجى ذكر سبب الرفض (اختياري)."

	msgMuteOK         = "✅ تم تجاهل المستخدم `%d` بنجاح. لن يتم الرد على رسائله."
	msgUnmuteOK       = "✅ تم إلغاء تجاهل المستخدم `%d` بنجاح. سيعود البوت للرد على رسائله."
	msgAlreadyIgnored = "⚠️ المستخدم `%d` موجود بالفعل في قائمة التجاهل."
	msgNotIgnored     = "⚠️ المستخدم `%d` ليس في قائمة التجاهل أصلاً."
	msgTargetNotFound = "❌ لم يتم تحديد المستخدم. استخدم الأمر بالرد على رسالة المستخدم، أو بتضمين ID المستخدم، أو استخدم الأمر `.سماح <ID>` / `.الغاء <ID>` في المحفوظات."
	msgUnmuteAllOK    = "✅ تم إلغاء تجاهل جميع المستخدمين بنجاح."
	msgUnmuteAllEmpty = "ℹ️ لا يوجد مستخدمون في قائمة التجاهل حاليًا."

	msgPriceUpdateOK      = "✅ تم تحديث `%s` إلى %d دينار."
	msgPriceInvalidValue  = "❌ القيمة المدخلة غير صحيحة. يرجى إدخال قيمة عددية صحيحة (مثال: `.ت1 60`)."
	msgOwnerPriceInfo     = "📄 معلومات التسعير للمستخدم (بناءً على طلبك):\n📖 إجمالي عدد الصفحات (للملفات المسعرة): %d\n💰 السعر الأساسي (بدون جلاد): %d دينار\n🏷️ السعر مع جلاد: %d دينار"
	msgNoSessionForUser   = "ℹ️ لا توجد بيانات تسعير للمستخدم `%d` بعد."
	msgDailyTotalSoFar    = "📊 مجموع المبالغ المؤكدة منذ آخر تقرير: %d دينار."
	msgWelcomeUpdated     = "✅ تم تحديث رسالة الترحيب بنجاح."
	msgWelcomeNeedsText   = "❌ يرجى كتابة نص الترحيب بعد الأمر (مثال: `.ترحيب أهلاً بك!`)."

	msgSleepOn  = "😴 تم تفعيل وضع النوم. سيتم إعلام المستخدمين بأن صاحب المكتبة غير متوفر."
	msgSleepOff = "🌅 تم إيقاف وضع النوم."

	msgAutoReplyOn  = "✅ تم تفعيل الرد التلقائي المخصص."
	msgAutoReplyOff = "✅ تم إيقاف الرد التلقائي المخصص."

	msgStats = "📈 إحصائيات البوت:\n✅ الطلبات المؤكدة: %d\n❌ الطلبات الملغاة: %d\n📁 عدد الملفات المؤكدة: %d\n👥 عدد المستخدمين المتفاعلين: %d"

	msgBotOnline = "🚀 البوت (%s) يعمل الآن!"
)

// Names shown back to the owner after a price update
const (
	priceNameBelow50     = "سعر الصفحة (أقل من 50)"
	priceNameAtOrAbove50 = "سعر الصفحة (50 فأكثر)"
	priceNameCover       = "سعر الجلاد"
)

// OnlineMessage formats the startup notification sent to the owner
func OnlineMessage(botName string) string {
	return fmt.Sprintf(msgBotOnline, botName)
}
